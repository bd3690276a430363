package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/careermap/internal/tui"
	"github.com/matzehuels/careermap/pkg/controller"
	"github.com/matzehuels/careermap/pkg/httputil"
	"github.com/matzehuels/careermap/pkg/progress"
)

func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [role]",
		Short: "Explore roadmaps interactively",
		Long: `Start the interactive roadmap explorer. Type a role to get suggestions,
press enter to generate, tab to browse skills and their courses, ctrl+s to
save progress and ctrl+e to export a PDF.`,
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

			var store progress.Store
			if s, err := c.newProgressStore(ctx, cfg); err != nil {
				c.Logger.Warn("progress storage unavailable", "err", err)
			} else {
				store = s
				defer s.Close()
			}

			// The program owns the terminal; keep log output out of it.
			quiet := c.Logger.With()
			quiet.SetOutput(cmd.ErrOrStderr())
			quiet.SetLevel(LogWarn)

			ctrl := controller.New(src, store, pdfRenderer(cfg), quiet)
			err = tui.Run(ctx, ctrl, tui.Options{
				ExportDir: exportDir(cfg),
				Role:      roleArg(ctx, args),
			})
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		},
	}
}
