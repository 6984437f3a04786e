package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
	"github.com/jackcharlielopez/forge-cli/internal/scaffold"
	"github.com/jackcharlielopez/forge-cli/internal/validate"
)

func addCmd() *cobra.Command {
	var (
		category string
		template string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Scaffold a new component",
		Long: `Create a component directory with a descriptor and starter source
file under the components root.

Examples:
  forge add button
  forge add use-toggle --template hook
  forge add date-picker --category form`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args[0], category, template)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", descriptor.DefaultCategory, "Component category")
	cmd.Flags().StringVarP(&template, "template", "t", "component", "Starter template: component, hook, utility")

	return cmd
}

func runAdd(name, category, template string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if !descriptor.ValidName(name) {
		return errors.New("E203").
			WithComponent(name).
			WithSuggestion("Use lowercase letters, digits, and hyphens, e.g. 'date-picker'")
	}

	dir := cfg.ComponentPath(name)
	if _, err := os.Stat(dir); err == nil {
		return errors.New("E501").WithComponent(name).WithDetail(dir)
	}

	tmpl, err := scaffold.GetComponent(template)
	if err != nil {
		return err
	}

	displayName := scaffold.PascalCase(name)
	if template == "hook" {
		displayName = scaffold.HookName(name)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data := scaffold.ComponentConfig{
		Name:        name,
		DisplayName: displayName,
		Category:    category,
		TypeScript:  cfg.TypeScript,
	}
	if err := tmpl.Create(dir, data); err != nil {
		// Leave nothing behind on a failed scaffold.
		os.RemoveAll(dir)
		return err
	}

	// Check our own output; a template regression should fail loudly
	// here, not at the next build.
	raw, err := os.ReadFile(filepath.Join(dir, descriptor.FileName))
	if err != nil {
		return err
	}
	c, violations := descriptor.Parse(raw)
	if len(violations) == 0 {
		violations = validate.Component(c, dir, validate.Options{})
	}
	if len(violations) > 0 {
		reportErrors(violations)
		return errors.New("E506").
			WithComponent(name).
			WithDetail("scaffolded component failed validation")
	}

	success("Added component %q", name)
	info("Edit %s, then run 'forge build'", dir)
	return nil
}
