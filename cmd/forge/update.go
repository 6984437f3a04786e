package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
	ferrors "github.com/jackcharlielopez/forge-cli/internal/errors"
)

func updateCmd() *cobra.Command {
	var bump string

	cmd := &cobra.Command{
		Use:   "update <name>...",
		Short: "Update component descriptors",
		Long: `Apply an in-place descriptor update to each named component: bump
the version and prune file references that no longer exist on disk.

Examples:
  forge update button                # patch bump, 1.0.0 -> 1.0.1
  forge update button card --bump minor
  forge update button --bump major`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := runUpdate(name, bump); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bump, "bump", "patch", "Version bump: patch, minor, major")

	return cmd
}

func runUpdate(name, bump string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	dir := cfg.ComponentPath(name)
	raw, err := os.ReadFile(filepath.Join(dir, descriptor.FileName))
	if err != nil {
		return ferrors.New("E502").WithComponent(name)
	}

	c, violations := descriptor.Parse(raw)
	if len(violations) > 0 {
		reportErrors(violations)
		return ferrors.New("E402").
			WithComponent(name).
			WithDetail("fix the descriptor before updating it")
	}

	old := c.Version
	next, err := bumpVersion(old, bump)
	if err != nil {
		return err
	}
	c.Version = next

	// Prune references to files that no longer exist.
	kept := c.Files[:0]
	for _, f := range c.Files {
		if _, err := os.Stat(filepath.Join(dir, f.Path)); err != nil {
			warn("%s: dropping missing file %q", name, f.Path)
			continue
		}
		kept = append(kept, f)
	}
	c.Files = kept

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, descriptor.FileName), data, 0644); err != nil {
		return err
	}

	success("Updated %q: %s -> %s", name, old, next)
	return nil
}

func bumpVersion(current, bump string) (string, error) {
	v, err := semver.NewVersion(current)
	if err != nil {
		return "", ferrors.New("E204").WithDetail(current)
	}
	switch bump {
	case "patch":
		return v.IncPatch().String(), nil
	case "minor":
		return v.IncMinor().String(), nil
	case "major":
		return v.IncMajor().String(), nil
	default:
		return "", fmt.Errorf("unknown bump %q, want patch, minor, or major", bump)
	}
}
