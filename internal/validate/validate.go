// Package validate enforces the semantic invariants of component
// descriptors that require looking at the component directory:
// nesting, file existence, prop consistency, and registry-dependency
// cycles. Structural checks live in the descriptor package.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// Options control optional strict checks.
type Options struct {
	// Strict additionally verifies that file extensions match the
	// declared type tag and that source files export something.
	Strict bool
}

// Component checks a parsed descriptor against its directory on disk.
// It accumulates every violation instead of stopping at the first;
// an empty result means the component is valid. Absence of a listed
// file is a validation error, not an IO failure, so Component never
// returns a non-validation error for it.
func Component(c *descriptor.Component, dir string, opts Options) []*errors.ForgeError {
	var errs []*errors.ForgeError

	errs = append(errs, checkNesting(c, dir)...)
	errs = append(errs, checkFiles(c, dir, opts)...)
	errs = append(errs, checkProps(c)...)

	return errs
}

// checkNesting rejects component directories that contain a
// subdirectory with its own descriptor. The namespace is flat.
func checkNesting(c *descriptor.Component, dir string) []*errors.ForgeError {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var errs []*errors.ForgeError
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		nested := filepath.Join(dir, entry.Name(), descriptor.FileName)
		if _, err := os.Stat(nested); err == nil {
			errs = append(errs, errors.New("E301").
				WithComponent(c.Name).
				WithDetail(fmt.Sprintf("subdirectory %q contains its own %s", entry.Name(), descriptor.FileName)))
		}
	}
	return errs
}

// checkFiles verifies every listed file exists and is non-empty,
// resolving paths relative to the component directory.
func checkFiles(c *descriptor.Component, dir string, opts Options) []*errors.ForgeError {
	var errs []*errors.ForgeError
	for _, f := range c.Files {
		path := filepath.Join(dir, f.Path)
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, errors.New("E302").
				WithComponent(c.Name).
				WithField(f.Path))
			continue
		}
		if info.Size() == 0 {
			errs = append(errs, errors.New("E303").
				WithComponent(c.Name).
				WithField(f.Path))
			continue
		}
		if opts.Strict {
			errs = append(errs, checkFileStrict(c, f, path)...)
		}
	}
	return errs
}

// extensionsByType lists the accepted extensions per file type tag.
var extensionsByType = map[descriptor.FileType][]string{
	descriptor.FileComponent: {".tsx", ".jsx", ".ts", ".js"},
	descriptor.FileHook:      {".ts", ".tsx", ".js", ".jsx"},
	descriptor.FileUtility:   {".ts", ".js"},
	descriptor.FileTypes:     {".ts", ".d.ts"},
}

// checkFileStrict applies the stricter per-file checks: extension
// matches the type tag and the file exports something.
func checkFileStrict(c *descriptor.Component, f descriptor.File, path string) []*errors.ForgeError {
	var errs []*errors.ForgeError

	ext := filepath.Ext(f.Path)
	allowed := extensionsByType[f.Type]
	match := false
	for _, a := range allowed {
		if ext == a || strings.HasSuffix(f.Path, a) {
			match = true
			break
		}
	}
	if !match {
		errs = append(errs, errors.New("E307").
			WithComponent(c.Name).
			WithField(f.Path).
			WithDetail(fmt.Sprintf("extension %q does not match type %q", ext, f.Type)))
	}

	data, err := os.ReadFile(path)
	if err == nil && !strings.Contains(string(data), "export") {
		errs = append(errs, errors.New("E308").
			WithComponent(c.Name).
			WithField(f.Path))
	}

	return errs
}

// checkProps verifies prop names and types are non-empty and that no
// required prop also declares a default value.
func checkProps(c *descriptor.Component) []*errors.ForgeError {
	var errs []*errors.ForgeError
	for i, p := range c.Props {
		if p.Name == "" || p.Type == "" {
			errs = append(errs, errors.New("E304").
				WithComponent(c.Name).
				WithField(fmt.Sprintf("props[%d]", i)))
			continue
		}
		if p.Required && p.HasDefault() {
			errs = append(errs, errors.New("E305").
				WithComponent(c.Name).
				WithField(p.Name))
		}
	}
	return errs
}
