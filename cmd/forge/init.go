package main

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
	"github.com/jackcharlielopez/forge-cli/internal/scaffold"
)

func initCmd() *cobra.Command {
	var (
		name        string
		description string
		typescript  bool
		tailwind    bool
		gitInit     bool
		skipStarter bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new component registry",
		Long: `Create a forge.json and the starter project layout in the given
directory (default: current directory). A starter button component is
seeded so the first build has something to show; skip it with
--no-starter.

Examples:
  forge init
  forge init my-registry --name my-registry
  forge init --git
  forge init --no-starter`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, name, description, typescript, tailwind, gitInit, !skipStarter)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Registry name (default: directory name)")
	cmd.Flags().StringVar(&description, "description", "", "Registry description")
	cmd.Flags().BoolVar(&typescript, "typescript", true, "Generate TypeScript starter files")
	cmd.Flags().BoolVar(&tailwind, "tailwind", false, "Note Tailwind CSS in the starter docs")
	cmd.Flags().BoolVar(&gitInit, "git", false, "Initialize a git repository")
	cmd.Flags().BoolVar(&skipStarter, "no-starter", false, "Skip the starter button component")

	return cmd
}

func runInit(dir, name, description string, typescript, tailwind, gitInit, starter bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return err
	}

	if config.Exists(abs) {
		return errors.New("E503").WithDetail(filepath.Join(abs, config.ConfigFileName))
	}

	if name == "" {
		name = filepath.Base(abs)
	}

	cfg := config.New()
	cfg.Name = name
	cfg.Description = description
	cfg.TypeScript = typescript
	cfg.Tailwind = tailwind
	if err := cfg.SaveTo(filepath.Join(abs, config.ConfigFileName)); err != nil {
		return err
	}

	project := scaffold.ProjectConfig{
		Name:        name,
		Description: description,
		TypeScript:  typescript,
		Tailwind:    tailwind,
	}
	if err := scaffold.Project().Create(abs, project); err != nil {
		return err
	}

	if starter {
		if err := seedStarter(cfg, abs); err != nil {
			return err
		}
	}

	if gitInit {
		if _, err := git.PlainInit(abs, false); err != nil && err != git.ErrRepositoryAlreadyExists {
			return err
		}
	}

	printBanner()
	success("Initialized registry %q", name)
	info("forge.json written")
	if starter {
		info("Starter component seeded at %s", filepath.Join(cfg.ComponentsDir, "button"))
	}
	info("Add your next component with 'forge add <name>'")
	return nil
}

// seedStarter scaffolds the button starter component so a fresh
// registry builds without any manual steps.
func seedStarter(cfg *config.Config, root string) error {
	tmpl, err := scaffold.GetComponent("component")
	if err != nil {
		return err
	}
	dir := filepath.Join(root, cfg.ComponentsDir, "button")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return tmpl.Create(dir, scaffold.ComponentConfig{
		Name:        "button",
		DisplayName: "Button",
		Category:    "ui",
		TypeScript:  cfg.TypeScript,
	})
}
