package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/registry"
	"github.com/jackcharlielopez/forge-cli/internal/serve"
	"github.com/jackcharlielopez/forge-cli/internal/watch"
)

func serveCmd() *cobra.Command {
	var (
		port      int
		watchMode bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the built registry locally",
		Long: `Serve the output directory over HTTP: the docs site at /, the
registry artifacts at their paths (/registry.json, /index.json,
/components/...), and Prometheus metrics at /metrics.

With --watch the components tree is rebuilt on change and connected
browsers reload automatically.

Examples:
  forge serve
  forge serve --port 8080
  forge serve --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, watchMode, quiet)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from forge.json)")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Rebuild and live-reload on change")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress request logging")

	return cmd
}

func runServe(port int, watchMode, quiet bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Serve.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// A first build so there is something to serve.
	if _, err := registry.Load(cfg.OutputPath()); err != nil {
		info("No built registry found, building...")
		opts := registry.Options{SkipInvalid: watchMode}
		if _, err := registry.New(cfg, opts).Build(context.Background()); err != nil {
			return err
		}
	}

	server := serve.New(cfg, serve.Options{LiveReload: watchMode, Quiet: quiet})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if watchMode {
		w, err := watch.New(cfg.ComponentsPath())
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case change, ok := <-w.Changes:
					if !ok {
						return
					}
					info("Changed: %s", change.Path)
					// Keep serving the rest while one component is broken.
					opts := registry.Options{SkipInvalid: true}
					if _, err := registry.New(cfg, opts).Build(ctx); err != nil {
						errorMsg("%s", err)
						server.Reload().NotifyError(err.Error())
						continue
					}
					server.Reload().ClearError()
					server.Reload().NotifyReload()
				}
			}
		}()
	}

	printBanner()
	success("Serving registry at %s", server.URL())
	if watchMode {
		info("Live reload on, watching %s", cfg.ComponentsPath())
	}
	info("Press Ctrl+C to stop")

	return server.Start(ctx)
}
