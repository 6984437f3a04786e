package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/publish"
	"github.com/jackcharlielopez/forge-cli/internal/registry"
)

func publishCmd() *cobra.Command {
	var skipBuild bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the built registry",
		Long: `Push the output tree to every configured publish target: an S3
bucket (publish.s3 in forge.json), a git branch (publish.git), or
both. The registry is rebuilt first unless --skip-build is given.

Examples:
  forge publish
  forge publish --skip-build`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(skipBuild)
		},
	}

	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Publish the existing output tree without rebuilding")

	return cmd
}

func runPublish(skipBuild bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	publishers, err := publish.ForConfig(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if skipBuild {
		if _, err := registry.Load(cfg.OutputPath()); err != nil {
			return err
		}
	} else {
		info("Building registry...")
		result, err := registry.New(cfg, registry.Options{}).Build(ctx)
		if err != nil {
			if result != nil && len(result.Errors) > 0 {
				reportErrors(result.Errors)
			}
			return err
		}
		success("Built %d components", len(result.Registry.Components))
	}

	for _, p := range publishers {
		info("Publishing to %s...", p.Name())
		if err := p.Publish(ctx, cfg.OutputPath()); err != nil {
			return err
		}
		success("Published to %s", p.Name())
	}
	return nil
}
