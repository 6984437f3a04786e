package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/registry"
)

func listCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List components in the built registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(category)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show one category")

	return cmd
}

func runList(category string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	reg, err := registry.Load(cfg.OutputPath())
	if err != nil {
		return err
	}

	shown := 0
	for _, group := range groupedComponents(reg, category) {
		fmt.Printf("\n%s\n", styleSuccess.Render(group.name))
		for _, c := range group.components {
			marker := ""
			if c.Deprecated {
				marker = " " + styleWarn.Render("[deprecated]")
			}
			if c.Experimental {
				marker += " " + styleWarn.Render("[experimental]")
			}
			fmt.Printf("  %-24s v%-8s %s%s\n", c.Name, c.Version, c.Description, marker)
			shown++
		}
	}

	fmt.Println()
	info("%d components", shown)
	return nil
}

type componentGroup struct {
	name       string
	components []componentRow
}

type componentRow struct {
	Name         string
	Version      string
	Description  string
	Deprecated   bool
	Experimental bool
}

func groupedComponents(reg *registry.Registry, category string) []componentGroup {
	var groups []componentGroup
	for _, cat := range reg.Categories {
		if category != "" && cat != category {
			continue
		}
		group := componentGroup{name: cat}
		for _, c := range reg.Components {
			if c.Category != cat {
				continue
			}
			group.components = append(group.components, componentRow{
				Name:         c.Name,
				Version:      c.Version,
				Description:  c.Description,
				Deprecated:   c.Deprecated,
				Experimental: c.Experimental,
			})
		}
		groups = append(groups, group)
	}
	return groups
}
