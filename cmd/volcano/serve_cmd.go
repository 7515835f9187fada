package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/delorianv/volcano-eruptions/internal/api"
	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/watcher"
)

func newServeCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Serve the catalog and per-year activity frames over HTTP, for web
renderers and external integrations.

With --watch the configured CSV is monitored and reloaded on change, so an
updated dataset shows up without a restart.

Examples:
  volcano serve                   # Start on the configured address
  volcano serve --addr :9000
  volcano serve --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			logger := newLogger(cfg)
			defer logger.Close()

			col, err := loadCollection(cfg)
			if err != nil {
				return err
			}

			server := api.NewServer(col, cfg, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				path := datasetPath(cfg)
				if path == "" {
					return fmt.Errorf("--watch needs a CSV dataset (use --dataset or set dataset.path)")
				}
				w, err := watcher.NewWatcher(path, watcher.HandlerFunc(func(p string) error {
					reloaded, err := dataset.Load(p)
					if err != nil {
						return err
					}
					server.ReplaceCollection(reloaded)
					return nil
				}), logger)
				if err != nil {
					return err
				}
				defer w.Close()
				go func() {
					if err := w.Run(ctx); err != nil && ctx.Err() == nil {
						logger.Error("serve", "dataset watcher stopped", err)
					}
				}()
			}

			httpServer := &http.Server{
				Addr:    cfg.Server.Addr,
				Handler: server.Handler(),
			}

			fmt.Printf("Starting volcano API server on %s\n", cfg.Server.Addr)
			fmt.Println("Endpoints:")
			fmt.Println("  GET /api/v1/volcanoes     - Catalog, ?start= and ?end= filter")
			fmt.Println("  GET /api/v1/frame/{year}  - Activity frame for one year")
			fmt.Println("  GET /api/v1/range         - Default simulation range")
			fmt.Println("  GET /api/v1/stats         - Dataset statistics")
			fmt.Println("  GET /health               - Health check")
			fmt.Println("  GET /metrics              - Prometheus metrics")

			errCh := make(chan error, 1)
			go func() {
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the CSV dataset on change")

	return cmd
}
