package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/careermap/pkg/controller"
	"github.com/matzehuels/careermap/pkg/httputil"
)

func (c *CLI) suggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "List job roles matching a query",
		Args:  cobra.MinimumNArgs(1),
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

			query := strings.Join(args, " ")
			items, err := src.Suggestions(ctx, query)
			if err != nil {
				return err
			}
			p := printer{cmd.OutOrStdout()}
			if len(items) == 0 {
				p.info("No roles match %q", query)
				return nil
			}
			for _, item := range items {
				var b strings.Builder
				for _, seg := range controller.Highlight(item, strings.TrimSpace(query)) {
					if seg.Match {
						b.WriteString(StyleHighlight.Bold(true).Render(seg.Text))
					} else {
						b.WriteString(seg.Text)
					}
				}
				p.line(b.String())
			}
			return nil
		},
	}
}
