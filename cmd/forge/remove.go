package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
	"github.com/jackcharlielopez/forge-cli/internal/registry"
)

func removeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a component",
		Long: `Delete a component directory and drop it from the built registry
artifacts if present. Source removal asks for confirmation unless
--force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runRemove(name string, force bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	dir := cfg.ComponentPath(name)
	if _, err := os.Stat(dir); err != nil {
		return errors.New("E502").WithComponent(name)
	}

	if !force {
		fmt.Printf("Remove %s and all its files? [y/N] ", dir)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			info("Aborted")
			return nil
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return err
	}

	// Keep a previously built output tree in sync between builds.
	mirror := filepath.Join(cfg.OutputPath(), "components", name)
	if _, err := os.Stat(mirror); err == nil {
		os.RemoveAll(mirror)
		os.Remove(filepath.Join(cfg.OutputPath(), "docs", "components", name+".html"))
	}
	if _, err := registry.Load(cfg.OutputPath()); err == nil {
		warn("Built registry still lists %q; run 'forge build' to regenerate", name)
	}

	success("Removed component %q", name)
	return nil
}
