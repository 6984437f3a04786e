package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
	"github.com/jackcharlielopez/forge-cli/internal/docs"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
	"github.com/jackcharlielopez/forge-cli/internal/manifest"
	"github.com/jackcharlielopez/forge-cli/internal/validate"
)

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Registry is the assembled document, nil when the build aborted.
	Registry *Registry

	// OutputDir is where artifacts were written.
	OutputDir string

	// Skipped lists components excluded under skip-invalid mode.
	Skipped []string

	// Errors holds every validation error accumulated across the
	// build. Non-empty Errors with a non-nil Registry means the build
	// ran in skip-invalid mode.
	Errors []*errors.ForgeError

	// Warnings are non-fatal findings, like manifest version conflicts.
	Warnings []string
}

// Valid reports whether the build produced a registry.
func (r *Result) Valid() bool {
	return r.Registry != nil
}

// Options configures the builder.
type Options struct {
	// SkipInvalid excludes failing components instead of aborting.
	SkipInvalid bool

	// Strict enables the stricter per-file validation checks.
	Strict bool

	// Clean removes the output directory before writing.
	Clean bool

	// Verbose enables verbose output.
	Verbose bool

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder runs the full pipeline: discover, validate, aggregate, emit.
type Builder struct {
	config  *config.Config
	options Options
	tracer  trace.Tracer
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	return &Builder{
		config:  cfg,
		options: options,
		tracer:  otel.Tracer("forge-cli/registry"),
	}
}

// discovered pairs a parsed component with its source directory.
type discovered struct {
	component *descriptor.Component
	dir       string
}

// Build performs a full registry build. Validation errors are
// accumulated across all components and reported together. By default
// any invalid component aborts the build and nothing is written;
// with SkipInvalid the offenders are excluded and a registry is still
// emitted for the rest. IO errors during emit abort immediately.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{OutputDir: b.config.OutputPath()}

	buildsTotal.Inc()

	b.progress("Discovering components...")
	ctx, span := b.tracer.Start(ctx, "registry.discover")
	dirs, err := b.discover()
	span.End()
	if err != nil {
		buildFailures.Inc()
		return nil, err
	}

	b.progress("Validating components...")
	_, span = b.tracer.Start(ctx, "registry.validate")
	accepted := b.validateAll(dirs, result)
	span.End()

	if len(result.Errors) > 0 && !b.options.SkipInvalid {
		buildFailures.Inc()
		result.Duration = time.Since(start)
		return result, errors.New("E402").
			WithDetail(fmt.Sprintf("%d validation errors across %d components", len(result.Errors), len(dirs)))
	}

	b.progress("Assembling registry...")
	reg := b.assemble(accepted)
	result.Registry = reg

	b.progress("Writing output...")
	_, span = b.tracer.Start(ctx, "registry.emit")
	err = b.emit(reg, accepted, result)
	span.End()
	if err != nil {
		buildFailures.Inc()
		result.Registry = nil
		return result, err
	}

	componentsBuilt.Set(float64(len(reg.Components)))
	result.Duration = time.Since(start)
	return result, nil
}

// discover lists the component directories one level under the
// components root. Discovery does not recurse; nesting is a
// validation error, not a discovery feature.
func (b *Builder) discover() ([]string, error) {
	root := b.config.ComponentsPath()
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.New("E402").Wrap(err).
			WithDetail("cannot read components directory " + root)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, descriptor.FileName)); err == nil {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// validateAll parses and validates every discovered descriptor,
// accumulating all errors into the result. Duplicate names exclude
// the later occurrence. Returns the components that passed every
// check, keyed by directory order.
func (b *Builder) validateAll(dirs []string, result *Result) []discovered {
	var parsed []discovered
	seen := make(map[string]string)
	failed := make(map[string]bool)

	for _, dir := range dirs {
		raw, err := os.ReadFile(filepath.Join(dir, descriptor.FileName))
		if err != nil {
			result.Errors = append(result.Errors, errors.New("E201").
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
			result.Errors = append(result.Errors, violations...)
			continue
		}

		// The first occurrence of a name wins; later ones are excluded.
		if first, dup := seen[c.Name]; dup {
			result.Errors = append(result.Errors, errors.New("E401").
				WithComponent(c.Name).
				WithDetail("already declared by "+first))
			// Listed by directory name; the component name belongs to
			// the first occurrence.
			result.Skipped = append(result.Skipped, filepath.Base(dir))
			continue
		}
		seen[c.Name] = dir

		if errs := validate.Component(c, dir, validate.Options{Strict: b.options.Strict}); len(errs) > 0 {
			result.Errors = append(result.Errors, errs...)
			failed[c.Name] = true
		}
		parsed = append(parsed, discovered{component: c, dir: dir})
	}

	byName := make(map[string]*descriptor.Component, len(parsed))
	for _, d := range parsed {
		byName[d.component.Name] = d.component
	}
	if cycleErrs, members := validate.FindCycles(byName); len(cycleErrs) > 0 {
		result.Errors = append(result.Errors, cycleErrs...)
		for name := range members {
			failed[name] = true
		}
	}

	var accepted []discovered
	for _, d := range parsed {
		if failed[d.component.Name] {
			result.Skipped = append(result.Skipped, d.component.Name)
			continue
		}
		accepted = append(accepted, d)
	}
	sort.Strings(result.Skipped)
	return accepted
}

// assemble builds the registry document from the accepted components,
// sorted by name, with derived category and tag sets.
func (b *Builder) assemble(accepted []discovered) *Registry {
	reg := &Registry{
		Name:        b.config.Name,
		Description: b.config.Description,
		Version:     b.config.Version,
		Author:      b.config.Author,
		License:     b.config.License,
		Repository:  b.config.Repository,
		Homepage:    b.config.Homepage,
		Components:  make([]descriptor.Component, 0, len(accepted)),
		LastUpdated: time.Now().UTC(),
	}
	for _, d := range accepted {
		reg.Components = append(reg.Components, *d.component)
	}
	sort.Slice(reg.Components, func(i, j int) bool {
		return reg.Components[i].Name < reg.Components[j].Name
	})
	reg.deriveSets()
	return reg
}

// emit writes every build artifact: the registry document, the
// per-component mirror tree, the documentation site, and the index
// and dependency manifests. Each build fully regenerates the output.
func (b *Builder) emit(reg *Registry, accepted []discovered, result *Result) error {
	out := b.config.OutputPath()

	if b.options.Clean {
		if err := os.RemoveAll(out); err != nil {
			return errors.New("E403").Wrap(err)
		}
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return errors.New("E403").Wrap(err)
	}

	if err := writeJSON(filepath.Join(out, RegistryFileName), reg); err != nil {
		return err
	}

	for _, d := range accepted {
		if err := b.mirror(d, filepath.Join(out, "components", d.component.Name)); err != nil {
			return err
		}
	}

	b.progress("Generating documentation...")
	site := docs.Site{
		Name:        reg.Name,
		Description: reg.Description,
		Version:     reg.Version,
		Components:  reg.Components,
		Categories:  reg.Categories,
		GeneratedAt: reg.LastUpdated,
	}
	if err := docs.Generate(site, filepath.Join(out, "docs")); err != nil {
		return errors.New("E403").Wrap(err)
	}

	b.progress("Generating manifests...")
	index := manifest.BuildIndex(reg.Components, reg.Categories, reg.LastUpdated)
	if err := writeJSON(filepath.Join(out, manifest.IndexFileName), index); err != nil {
		return err
	}

	deps, conflicts := manifest.BuildDependencies(reg.Components, reg.LastUpdated)
	result.Warnings = append(result.Warnings, conflicts...)
	if err := writeJSON(filepath.Join(out, manifest.DependenciesFileName), deps); err != nil {
		return err
	}

	return nil
}

// mirror copies a component's descriptor and listed files into its
// subdirectory of the output tree. Source directories are never
// mutated.
func (b *Builder) mirror(d discovered, dest string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return errors.New("E404").Wrap(err).WithComponent(d.component.Name)
	}

	data, err := d.component.Marshal()
	if err != nil {
		return errors.New("E404").Wrap(err).WithComponent(d.component.Name)
	}
	if err := os.WriteFile(filepath.Join(dest, descriptor.FileName), data, 0644); err != nil {
		return errors.New("E404").Wrap(err).WithComponent(d.component.Name)
	}

	for _, f := range d.component.Files {
		if err := copyFile(filepath.Join(d.dir, f.Path), filepath.Join(dest, f.Path)); err != nil {
			return errors.New("E404").Wrap(err).
				WithComponent(d.component.Name).
				WithField(f.Path)
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.New("E403").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.New("E403").Wrap(err).WithDetail(path)
	}
	return nil
}

func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}
