package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/careermap/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the roadmap API",
		Long: `Serve the suggestion and roadmap endpoints used by the browser
front-end, plus JSON, HTML and PDF views under /api.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	runner, src, closeCache, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer closeCache()

	store, err := c.newProgressStore(ctx, cfg)
	if err != nil {
		c.Logger.Warn("progress storage unavailable", "store", cfg.Progress.Store, "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	srv := server.New(cfg.Server, server.Deps{
		Suggester: src,
		Runner:    runner,
		Progress:  store,
		Logger:    c.Logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
