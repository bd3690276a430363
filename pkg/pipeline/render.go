package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/careermap/pkg/cache"
	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/export"
	"github.com/matzehuels/careermap/pkg/observability"
	"github.com/matzehuels/careermap/pkg/render/nodelink"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// artifactInputs is everything a cached drawing depends on.
type artifactInputs struct {
	Roadmap  roadmap.Roadmap `json:"roadmap"`
	Detailed bool            `json:"detailed"`
	Title    bool            `json:"title"`
	PNGScale float64         `json:"png_scale"`
}

// cacheable lists the formats whose output depends only on the roadmap.
// HTML and PDF carry a generation timestamp and are always rendered fresh.
var cacheable = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatGraphPDF: true,
}

// Render produces every format in opts.Formats concurrently. Graph drawings
// are cached by roadmap content hash.
func (r *Runner) Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	if len(opts.Formats) == 0 {
		return artifacts, nil
	}

	hash, err := cache.HashJSON(artifactInputs{
		Roadmap:  res.Roadmap,
		Detailed: opts.Detailed,
		Title:    opts.Title,
		PNGScale: opts.PNGScale,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash roadmap")
	}
	dot := nodelink.ToDOT(res.Graph, r.dotOptions(res, opts))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, format := range uniq(opts.Formats) {
		g.Go(func() error {
			start := time.Now()
			data, err := r.renderCached(ctx, hash, format, func() ([]byte, error) {
				return r.renderFormat(ctx, format, dot, res, opts)
			})
			observability.Roadmap().OnExport(ctx, res.Roadmap.Role, format, len(data), time.Since(start), err)
			if err != nil {
				return err
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (r *Runner) renderCached(ctx context.Context, hash, format string, fn func() ([]byte, error)) ([]byte, error) {
	if !cacheable[format] {
		return fn()
	}
	key := r.Keyer.ArtifactKey(hash, format)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, cache.KindArtifact)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, cache.KindArtifact)

	data, err := fn()
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err == nil {
		observability.Cache().OnCacheSet(ctx, cache.KindArtifact, len(data))
	}
	return data, nil
}

func (r *Runner) renderFormat(ctx context.Context, format, dot string, res *Result, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(Bundle{Roadmap: res.Roadmap, Graph: res.Graph, Timeline: res.Timeline, Groups: res.Groups}, "", "  ")
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.PNGScale)
	case FormatGraphPDF:
		return nodelink.RenderPDF(ctx, dot)
	case FormatHTML:
		return export.Render(export.Build(res.Roadmap, r.Now()))
	case FormatPDF:
		_, data, err := export.PDF(ctx, r.PDF, res.Roadmap, r.Now())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "Failed to export PDF. Please try again.")
		}
		return data, nil
	default:
		return nil, ValidateFormat(format)
	}
}

func (r *Runner) dotOptions(res *Result, opts Options) nodelink.Options {
	o := nodelink.Options{Detailed: opts.Detailed}
	if opts.Title {
		o.Title = res.Roadmap.Role
	}
	return o
}

func uniq(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
