package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/registry"
)

func searchCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search components by name, description, or tag",
		Long: `Search the built registry. With --remote (or when no local build
exists and a registry URL is configured) the published registry is
searched instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], remote)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Search the published registry at the configured URL")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, remote bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	var reg *registry.Registry
	if remote {
		if cfg.RegistryURL == "" {
			return fmt.Errorf("no registryUrl configured in forge.json")
		}
		client := registry.NewClient(cfg.RegistryURL)
		reg, err = client.Fetch(cmd.Context())
	} else {
		reg, err = registry.Load(cfg.OutputPath())
	}
	if err != nil {
		return err
	}

	matches := registry.Search(reg, query)
	if len(matches) == 0 {
		info("No components match %q", query)
		return nil
	}

	for _, i := range matches {
		c := reg.Components[i]
		tags := ""
		if len(c.Tags) > 0 {
			tags = styleInfo.Render(" [" + strings.Join(c.Tags, ", ") + "]")
		}
		fmt.Printf("  %-24s %s%s\n", styleSuccess.Render(c.Name), c.Description, tags)
	}
	info("%d matches", len(matches))
	return nil
}
