package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/careermap/pkg/pipeline"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// roadmapOpts holds the flags of the roadmap command.
type roadmapOpts struct {
	output   string // output file (one format) or base path (several)
	formats  []string
	detailed bool
	refresh  bool
	title    bool
	strict   bool
	scale    float64
}

func (c *CLI) roadmapCommand() *cobra.Command {
	var formats string
	var opts roadmapOpts

	cmd := &cobra.Command{
		Use:   "roadmap <role>",
		Short: "Generate a roadmap and render it",
		Long: `Generate the roadmap for a job role and write it in one or more formats:
json, dot, svg, png, graph-pdf (the skills graph), html and pdf (the
printable summary).`,
		Example: `  careermap roadmap "Data Analyst"
  careermap roadmap "Data Analyst" -f svg,html -o out/data-analyst`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formats)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRoadmap(cmd, roleArg(cmd.Context(), args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): json (default), dot, svg, png, graph-pdf, html, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show category and level in graph nodes")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cached roadmap")
	cmd.Flags().BoolVar(&opts.title, "title", false, "draw the role above the graph")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject roadmaps with duplicate skills or unknown prerequisites")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultPNGScale, "PNG scale factor")
	return cmd
}

// parseFormats splits a comma-separated format list. Empty means json.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{pipeline.FormatJSON}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (c *CLI) runRoadmap(cmd *cobra.Command, role string, opts roadmapOpts) error {
	ctx := cmd.Context()
	runner, _, closeCache, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer closeCache()

	t := startTimer(c.Logger)
	res, err := withSpinner(ctx, cmd.ErrOrStderr(), "Generating roadmap...", func() (*pipeline.Result, error) {
		return runner.Execute(ctx, pipeline.Options{
			Role:     role,
			Formats:  opts.formats,
			Refresh:  opts.refresh,
			Detailed: opts.detailed,
			Title:    opts.title,
			Strict:   opts.strict,
			PNGScale: opts.scale,
		})
	})
	if err != nil {
		return err
	}
	t.done("generated roadmap", "role", res.Roadmap.Role)

	paths, err := writeArtifacts(res, opts.formats, opts.output)
	if err != nil {
		return err
	}

	p := printer{cmd.OutOrStdout()}
	p.success("Roadmap for %s", StyleHighlight.Render(res.Roadmap.Role))
	p.stats(res.Stats, res.CacheHit)
	for _, path := range paths {
		p.file(path)
	}
	return nil
}

// writeArtifacts writes each rendered format. With one format, output is
// the file name; with several it is a base path that gets each format's
// extension. The default base is the role's slug.
func writeArtifacts(res *pipeline.Result, formats []string, output string) ([]string, error) {
	base := output
	if base == "" {
		base = roadmap.Slug(res.Roadmap.Role)
	}
	var paths []string
	for _, f := range formats {
		path := base + pipeline.Extension(f)
		if len(formats) == 1 && output != "" {
			path = output
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, res.Artifacts[f], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// roleArg joins positional arguments into one role.
func roleArg(ctx context.Context, args []string) string {
	role := strings.Join(args, " ")
	loggerFromContext(ctx).Debug("role argument", "role", role)
	return role
}
