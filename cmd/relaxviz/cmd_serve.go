package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxviz/internal/config"
	"github.com/katalvlaran/relaxviz/internal/logging"
	"github.com/katalvlaran/relaxviz/internal/server"
	"github.com/katalvlaran/relaxviz/session"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the session over HTTP (JSON API and /metrics)",
		Long: `Starts an HTTP server exposing graph generation, traversal orders and runs.
With --config, edits to the generator section are hot-reloaded and apply
to the next generated graph.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New("serve")
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg().Server.Addr
			}

			sess, err := session.New(a.cfg().Generator, session.WithLogger(logging.New("session")))
			if err != nil {
				return err
			}

			a.loader.OnChange(func(c *config.Config) {
				if err := sess.SetParams(c.Generator); err != nil {
					log.Warn("hot-reload skipped: generator params invalid", "error", err)
				}
			})
			stopWatch, err := a.loader.Watch()
			if err != nil {
				log.Warn("config watcher unavailable (hot-reload disabled)", "error", err)
			} else {
				defer stopWatch()
			}

			srv := server.New(sess, a.loader, logging.New("http"))
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Listen(addr) }()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			log.Info("shutting down")
			shutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(shutCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address (default: server.addr from config)")
	return cmd
}
