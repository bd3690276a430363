package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/careermap/pkg/cache"
	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/export"
	"github.com/matzehuels/careermap/pkg/graph"
	"github.com/matzehuels/careermap/pkg/observability"
	"github.com/matzehuels/careermap/pkg/roadmap"
	"github.com/matzehuels/careermap/pkg/skills"
	"github.com/matzehuels/careermap/pkg/timeline"
)

// Source produces roadmaps. Both the local catalog and the backend client
// implement it.
type Source interface {
	Roadmap(ctx context.Context, role string) (roadmap.Roadmap, error)
}

// Runner executes the pipeline with caching. It holds no per-run state and
// is safe for concurrent use.
type Runner struct {
	Source Source
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// PDF renders the export document. Defaults to wkhtmltopdf.
	PDF export.PDFRenderer
	// TTL applies to cached roadmaps and artifacts.
	TTL time.Duration
	// Now stamps export documents. Defaults to time.Now.
	Now func() time.Time
}

// NewRunner returns a runner for src. A nil cache disables caching, a nil
// keyer selects cache.DefaultKeyer and a nil logger discards output.
func NewRunner(src Source, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Source: src,
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		PDF:    export.CommandRenderer{},
		TTL:    cache.DefaultTTL,
		Now:    time.Now,
	}
}

// Execute runs fetch, build and render for opts.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	res := &Result{}

	start := time.Now()
	rm, hit, err := r.Fetch(ctx, opts.Role, opts.Refresh)
	if err != nil {
		return nil, err
	}
	res.CacheHit = hit
	res.Stats.FetchTime = time.Since(start)

	start = time.Now()
	if err := r.Build(rm, res); err != nil {
		return nil, err
	}
	res.Stats.BuildTime = time.Since(start)
	if opts.Strict {
		if err := roadmap.Validate(res.Roadmap); err != nil {
			return nil, err
		}
	}

	r.Logger.Info("generated roadmap",
		"role", res.Roadmap.Role,
		"skills", res.Stats.Skills,
		"edges", res.Stats.Edges,
		"stages", res.Stats.Stages,
		"cached", hit)
	if res.Stats.Dangling > 0 {
		r.Logger.Warn("dependencies reference unlisted skills", "skills", res.Graph.Dangling)
	}

	start = time.Now()
	res.Artifacts, err = r.Render(ctx, res, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.RenderTime = time.Since(start)
	if len(opts.Formats) > 0 {
		r.Logger.Debug("rendered outputs", "formats", opts.Formats, "duration", res.Stats.RenderTime)
	}
	return res, nil
}

// Fetch returns the roadmap for role, from the cache unless refresh is set.
// The boolean reports a cache hit.
func (r *Runner) Fetch(ctx context.Context, role string, refresh bool) (roadmap.Roadmap, bool, error) {
	if r.Source == nil {
		return roadmap.Roadmap{}, false, errors.New(errors.ErrCodeInternal, "pipeline has no roadmap source")
	}
	key := r.Keyer.RoadmapKey(role)
	hooks := observability.Cache()

	if !refresh {
		var cached roadmap.Roadmap
		if hit, err := cache.GetJSON(ctx, r.Cache, key, &cached); err == nil && hit {
			hooks.OnCacheHit(ctx, cache.KindRoadmap)
			return cached, true, nil
		} else if err != nil {
			r.Logger.Warn("roadmap cache read failed", "err", err)
		}
		hooks.OnCacheMiss(ctx, cache.KindRoadmap)
	}

	observability.Roadmap().OnGenerateStart(ctx, role)
	start := time.Now()
	rm, err := r.Source.Roadmap(ctx, role)
	observability.Roadmap().OnGenerateComplete(ctx, role, len(rm.Skills), time.Since(start), err)
	if err != nil {
		return roadmap.Roadmap{}, false, err
	}

	if rm.HasSkills() {
		if err := cache.SetJSON(ctx, r.Cache, key, rm, r.TTL); err != nil {
			r.Logger.Warn("roadmap cache write failed", "err", err)
		} else {
			hooks.OnCacheSet(ctx, cache.KindRoadmap, len(rm.Skills))
		}
	}
	return rm, false, nil
}

// Build repairs rm and fills res with the roadmap, graph and timeline. A
// roadmap without skills is rejected with NO_SKILLS.
func (r *Runner) Build(rm roadmap.Roadmap, res *Result) error {
	rm = roadmap.Repair(rm)
	if !rm.HasSkills() {
		return errors.New(errors.ErrCodeNoSkills, "No skills data found for this role.")
	}
	res.Roadmap = rm
	res.Graph = graph.Build(rm.Skills, rm.Dependencies)
	res.Timeline = timeline.Build(rm.Progression)
	res.Groups = skills.Group(rm.Skills)
	res.Stats.Skills = len(res.Graph.Nodes)
	res.Stats.Edges = len(res.Graph.Edges)
	res.Stats.Stages = len(res.Timeline)
	res.Stats.Dangling = len(res.Graph.Dangling)
	res.Stats.CyclesBroken = res.Graph.CyclesBroken
	return nil
}

// Close closes the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}
