package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/careermap/pkg/buildinfo"
	"github.com/matzehuels/careermap/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "careermap turns a job title into a skills roadmap",
		Long: `careermap generates a career roadmap for a job role: the skills it needs,
how they depend on each other, a progression ladder and matching courses.
It can serve the roadmap API, drive an interactive terminal UI, or render
roadmaps to JSON, DOT, SVG, PNG, HTML and PDF.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if c.Logger.GetLevel() <= LogDebug {
				observability.NewLogHooks(c.Logger).Install()
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/careermap/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the roadmap cache")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.suggestCommand())
	root.AddCommand(c.roadmapCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.progressCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
