// Package pkg provides the core libraries of careermap.
//
// # Overview
//
// careermap turns a job title into a learning roadmap: the skills the role
// needs, the prerequisites between them, the career stages leading up to it
// and courses for each skill. The libraries are split by concern:
//
//  1. Knowledge: [catalog] answers role lookups, suggestions and course
//     queries from the bundled job-skill and course data.
//  2. Views: [skills], [color], [graph] and [timeline] shape a [roadmap]
//     into what a front end displays.
//  3. Output: [export] prints a roadmap as HTML or PDF, [render/nodelink]
//     draws the prerequisite graph with Graphviz.
//  4. Orchestration: [pipeline] fetches, caches and renders roadmaps for the
//     CLI and the HTTP server alike. [controller] carries the interactive
//     front-end state.
//  5. Infrastructure: [cache], [progress], [client], [httputil] and
//     [observability].
//
// # Architecture
//
//	job title
//	    ↓
//	[catalog] or [client] (roadmap.Roadmap)
//	    ↓
//	[pipeline] (cache, repair, validate)
//	    ↓
//	[graph] + [timeline] + [export]
//	    ↓
//	JSON/DOT/SVG/PNG/HTML/PDF output
//
// # Quick Start
//
//	cat, _ := catalog.Default(nil)
//	runner := pipeline.NewRunner(cat, cache.NewNullCache(), cache.NewDefaultKeyer(), nil)
//	res, _ := runner.Execute(ctx, pipeline.Options{Role: "Data Analyst"})
//	fmt.Println(res.Graph.Nodes[0].Category)
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Redis and MongoDB backends
//
// [catalog]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/catalog
// [skills]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/skills
// [color]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/color
// [graph]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/graph
// [timeline]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/timeline
// [roadmap]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/roadmap
// [export]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/export
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/pipeline
// [controller]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/controller
// [cache]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/cache
// [progress]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/progress
// [client]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/client
// [httputil]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/careermap/pkg/observability
package pkg
