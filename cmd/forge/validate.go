package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
	ferrors "github.com/jackcharlielopez/forge-cli/internal/errors"
	"github.com/jackcharlielopez/forge-cli/internal/validate"
)

func validateCmd() *cobra.Command {
	var (
		fix    bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate [name...]",
		Short: "Validate component descriptors",
		Long: `Check every component (or just the named ones) against the
descriptor schema and the semantic rules: flat namespace, listed
files present and non-empty, consistent props, no circular registry
dependencies.

With --fix, a narrow set of repairs is applied and descriptors are
rewritten in place: missing defaults are filled in, references to
files that no longer exist are dropped, and defaults are removed
from required props.

Examples:
  forge validate
  forge validate button card
  forge validate --fix
  forge validate --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, fix, strict)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Apply repair heuristics and rewrite descriptors")
	cmd.Flags().BoolVar(&strict, "strict", false, "Also check file extensions and export markers")

	return cmd
}

func runValidate(names []string, fix, strict bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	dirs, err := componentDirs(cfg, names)
	if err != nil {
		return err
	}

	var allErrs []*ferrors.ForgeError
	components := make(map[string]*descriptor.Component)

	for _, dir := range dirs {
		raw, err := os.ReadFile(filepath.Join(dir, descriptor.FileName))
		if err != nil {
			allErrs = append(allErrs, ferrors.New("E201").
				WithComponent(filepath.Base(dir)).
				WithDetail(err.Error()))
			continue
		}

		c, violations := descriptor.Parse(raw)
		if len(violations) > 0 {
			for _, v := range violations {
				if v.Component == "" {
					v.Component = filepath.Base(dir)
				}
			}
			allErrs = append(allErrs, violations...)
			continue
		}

		if fix {
			result := validate.Fix(c, dir)
			// Persist defaulted fields the raw descriptor omitted.
			for _, field := range missingDefaults(raw) {
				result.Changed = true
				result.Applied = append(result.Applied, "filled in default "+field)
			}
			if result.Changed {
				data, err := c.Marshal()
				if err != nil {
					return err
				}
				if err := os.WriteFile(filepath.Join(dir, descriptor.FileName), data, 0644); err != nil {
					return err
				}
				for _, applied := range result.Applied {
					warn("%s: %s", c.Name, applied)
				}
			}
		}

		allErrs = append(allErrs, validate.Component(c, dir, validate.Options{Strict: strict})...)
		components[c.Name] = c
	}

	// Cycle checking always runs over the full sibling set: a named
	// component can be on a cycle that passes through components that
	// were not named. Only cycles touching the validated set are
	// reported here.
	if len(names) > 0 {
		named := make(map[string]bool, len(components))
		for name := range components {
			named[name] = true
		}
		siblings, err := siblingComponents(cfg, components)
		if err != nil {
			return err
		}
		allErrs = append(allErrs, validate.CyclesTouching(siblings, named)...)
	} else {
		allErrs = append(allErrs, validate.Cycles(components)...)
	}

	if len(allErrs) > 0 {
		errorMsg("%d problems found", len(allErrs))
		reportErrors(allErrs)
		return ferrors.New("E402").
			WithDetail("validation found problems; nothing was built")
	}

	success("%d components valid", len(components))
	return nil
}

// siblingComponents extends the validated subset with every other
// parseable descriptor under the components root. Unparseable siblings
// are reported when they are validated themselves; here they simply
// contribute no edges.
func siblingComponents(cfg *config.Config, validated map[string]*descriptor.Component) (map[string]*descriptor.Component, error) {
	all := make(map[string]*descriptor.Component, len(validated))
	for name, c := range validated {
		all[name] = c
	}

	dirs, err := componentDirs(cfg, nil)
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		raw, err := os.ReadFile(filepath.Join(dir, descriptor.FileName))
		if err != nil {
			continue
		}
		c, violations := descriptor.Parse(raw)
		if len(violations) > 0 {
			continue
		}
		if _, ok := all[c.Name]; !ok {
			all[c.Name] = c
		}
	}
	return all, nil
}

// missingDefaults reports which defaulted descriptor fields the raw
// JSON omits entirely.
func missingDefaults(raw []byte) []string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	var missing []string
	for _, key := range []string{"category", "version"} {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// componentDirs resolves which component directories to validate:
// all of them, or the named subset.
func componentDirs(cfg *config.Config, names []string) ([]string, error) {
	if len(names) > 0 {
		var dirs []string
		for _, name := range names {
			dir := cfg.ComponentPath(name)
			if _, err := os.Stat(filepath.Join(dir, descriptor.FileName)); err != nil {
				return nil, ferrors.New("E502").WithComponent(name)
			}
			dirs = append(dirs, dir)
		}
		return dirs, nil
	}

	entries, err := os.ReadDir(cfg.ComponentsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(cfg.ComponentsPath(), entry.Name())
		if _, err := os.Stat(filepath.Join(dir, descriptor.FileName)); err == nil {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
