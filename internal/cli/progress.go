package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/careermap/pkg/roadmap"
)

func (c *CLI) progressCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Inspect or clear saved progress",
	}
	cmd.PersistentFlags().StringVar(&id, "id", roadmap.DefaultProgressID, "snapshot id")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			store, err := c.newProgressStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			p := printer{cmd.OutOrStdout()}
			snap, err := store.Load(ctx, id)
			if err != nil {
				return err
			}
			if snap == nil {
				p.info("No saved progress")
				return nil
			}
			p.keyValue("Role", snap.Role)
			p.keyValue("Skills", strconv.Itoa(len(snap.Skills)))
			p.keyValue("Saved", snap.Timestamp.Local().Format("2006-01-02 15:04"))
			for _, s := range snap.Skills {
				p.detail("%s", s)
			}
			p.nextStep("Continue with", appName+" tui \""+snap.Role+"\"")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			store, err := c.newProgressStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Delete(ctx, id); err != nil {
				return err
			}
			printer{cmd.OutOrStdout()}.success("Cleared saved progress")
			return nil
		},
	})
	return cmd
}
