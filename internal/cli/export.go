package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/careermap/pkg/controller"
	"github.com/matzehuels/careermap/pkg/export"
	"github.com/matzehuels/careermap/pkg/httputil"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

type exported struct {
	name string
	data []byte
}

func (c *CLI) exportCommand() *cobra.Command {
	var output string
	var html bool

	cmd := &cobra.Command{
		Use:   "export <role>",
		Short: "Export a printable roadmap summary as PDF",
		Long: `Generate the roadmap for a role and export the printable summary:
required skills, career progression and recommended courses. PDF export
needs wkhtmltopdf (see export.pdf_command); use --html to write the page
without converting it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			ch := c.newCache(ctx, cfg)
			defer ch.Close()
			src, err := c.newBackend(cfg, ch, httputil.SingleAttempt)
			if err != nil {
				return err
			}

			ctrl := controller.New(src, nil, pdfRenderer(cfg), c.Logger)
			p := printer{cmd.OutOrStdout()}
			report := func() {
				if n, ok := ctrl.Notifier.Current(); ok && n.Kind == controller.KindError {
					p.failure("%s", n.Message)
				}
			}

			if _, err := ctrl.Submit(ctx, roleArg(ctx, args)); err != nil {
				report()
				return err
			}

			var name string
			var data []byte
			if html {
				rm, _ := ctrl.State.Current()
				data, err = export.Render(export.Build(rm, time.Now()))
				name = strings.TrimSuffix(roadmap.Filename(rm.Role), ".pdf") + ".html"
			} else {
				var out exported
				out, err = withSpinner(ctx, cmd.ErrOrStderr(), controller.MsgExporting, func() (exported, error) {
					name, data, err := ctrl.Export(ctx)
					return exported{name, data}, err
				})
				name, data = out.name, out.data
			}
			if err != nil {
				report()
				return err
			}

			path := output
			if path == "" {
				path = filepath.Join(exportDir(cfg), name)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			p.success("Exported roadmap")
			p.file(path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: career-roadmap-<role>.pdf in export.dir)")
	cmd.Flags().BoolVar(&html, "html", false, "write the HTML page instead of a PDF")
	return cmd
}
