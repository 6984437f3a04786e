package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/registry"
	"github.com/jackcharlielopez/forge-cli/internal/watch"
)

func buildCmd() *cobra.Command {
	var (
		output      string
		watchMode   bool
		verbose     bool
		strict      bool
		skipInvalid bool
		clean       bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the registry",
		Long: `Run the full pipeline: discover components, validate every
descriptor, aggregate the valid ones into registry.json, mirror the
component files into the output tree, and generate the docs site and
manifests.

By default any invalid component aborts the build with the complete
error list and nothing is written. With --skip-invalid the offenders
are excluded and a registry is still emitted for the rest.

Examples:
  forge build
  forge build --watch
  forge build --skip-invalid
  forge build --strict --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildCmd(output, watchMode, verbose, strict, skipInvalid, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from forge.json)")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Rebuild when component files change")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report every pipeline step")
	cmd.Flags().BoolVar(&strict, "strict", false, "Also check file extensions and export markers")
	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Exclude invalid components instead of aborting")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory before building")

	return cmd
}

func runBuildCmd(output string, watchMode, verbose, strict, skipInvalid, clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.OutputDir = output
	}

	opts := registry.Options{
		SkipInvalid: skipInvalid,
		Strict:      strict,
		Clean:       clean,
		Verbose:     verbose,
	}
	if verbose {
		opts.OnProgress = func(step string) { info("%s", step) }
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if !watchMode {
		return runOnce(ctx, cfg, opts)
	}

	// Watch mode: repeated invocation of the same pipeline.
	if err := runOnce(ctx, cfg, opts); err != nil {
		errorMsg("%s", err)
	}

	w, err := watch.New(cfg.ComponentsPath())
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	info("Watching %s for changes (Ctrl+C to stop)", cfg.ComponentsPath())
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			info("Stopped")
			return nil
		case change := <-w.Changes:
			info("Changed: %s", change.Path)
			if err := runOnce(ctx, cfg, opts); err != nil {
				errorMsg("%s", err)
			}
		}
	}
}

// runOnce executes one pipeline run and reports the outcome.
func runOnce(ctx context.Context, cfg *config.Config, opts registry.Options) error {
	result, err := registry.New(cfg, opts).Build(ctx)
	if err != nil {
		if result != nil && len(result.Errors) > 0 {
			errorMsg("%d problems found", len(result.Errors))
			reportErrors(result.Errors)
		}
		return err
	}

	for _, w := range result.Warnings {
		warn("%s", w)
	}
	if len(result.Skipped) > 0 {
		warn("Skipped invalid components: %v", result.Skipped)
		reportErrors(result.Errors)
	}

	success("Built %d components in %s", len(result.Registry.Components), result.Duration.Round(time.Millisecond))
	info("Output: %s", result.OutputDir)
	return nil
}
