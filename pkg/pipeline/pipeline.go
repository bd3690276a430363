// Package pipeline runs the roadmap pipeline shared by the CLI, the TUI and
// the HTTP server:
//
//  1. Fetch: obtain the roadmap for a role from a [Source] (the local
//     catalog or the remote service), cached by role
//  2. Build: repair missing fields, then derive the skill graph and the
//     progression timeline
//  3. Render: produce the requested artifacts (JSON bundle, DOT, SVG, PNG,
//     graph PDF, export HTML, export PDF)
//
// Usage:
//
//	runner := pipeline.NewRunner(cat, fileCache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Role:    "Data Analyst",
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/graph"
	"github.com/matzehuels/careermap/pkg/roadmap"
	"github.com/matzehuels/careermap/pkg/skills"
	"github.com/matzehuels/careermap/pkg/timeline"
)

// =============================================================================
// Formats
// =============================================================================

const (
	FormatJSON     = "json"      // roadmap, graph and timeline bundle
	FormatDOT      = "dot"       // Graphviz source of the skill graph
	FormatSVG      = "svg"       // skill graph drawing
	FormatPNG      = "png"       // skill graph raster
	FormatGraphPDF = "graph-pdf" // skill graph as a PDF page
	FormatHTML     = "html"      // printable roadmap summary
	FormatPDF      = "pdf"       // printable roadmap summary as PDF
)

// Formats lists every supported format in display order.
var Formats = []string{FormatJSON, FormatDOT, FormatSVG, FormatPNG, FormatGraphPDF, FormatHTML, FormatPDF}

// Extension returns the file extension for format, including the dot.
func Extension(format string) string {
	switch format {
	case FormatGraphPDF:
		return ".graph.pdf"
	default:
		return "." + format
	}
}

// ValidateFormat checks that format is supported. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options and results
// =============================================================================

// DefaultPNGScale is the raster scale used when Options.PNGScale is zero.
const DefaultPNGScale = 2.0

// Options configures one pipeline run.
type Options struct {
	Role     string   `json:"role"`
	Formats  []string `json:"formats,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`  // bypass the roadmap cache
	Detailed bool     `json:"detailed,omitempty"` // category and level in graph labels
	Title    bool     `json:"title,omitempty"`    // draw the role above the graph
	Strict   bool     `json:"strict,omitempty"`   // fail on duplicate skills or dangling prerequisites
	PNGScale float64  `json:"png_scale,omitempty"`
}

// Validate trims the role and checks role and formats.
func (o *Options) Validate() error {
	o.Role = strings.TrimSpace(o.Role)
	if err := errors.ValidateRole(o.Role); err != nil {
		return err
	}
	if o.PNGScale <= 0 {
		o.PNGScale = DefaultPNGScale
	}
	return ValidateFormats(o.Formats)
}

// Result is the output of [Runner.Execute].
type Result struct {
	Roadmap   roadmap.Roadmap
	Graph     graph.Graph
	Timeline  []timeline.Stage
	Groups    []skills.SkillGroup // skills bucketed by area for summaries
	Artifacts map[string][]byte
	Stats     Stats
	CacheHit  bool // roadmap came from the cache
}

// Stats records sizes and stage timings.
type Stats struct {
	Skills       int
	Edges        int
	Stages       int
	Dangling     int
	CyclesBroken int
	FetchTime    time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// Bundle is the JSON artifact.
type Bundle struct {
	Roadmap  roadmap.Roadmap     `json:"roadmap"`
	Graph    graph.Graph         `json:"graph"`
	Timeline []timeline.Stage    `json:"timeline"`
	Groups   []skills.SkillGroup `json:"groups"`
}
