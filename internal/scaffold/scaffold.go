// Package scaffold generates starter files: the project layout
// created by init and the component skeletons created by add.
package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// ProjectConfig contains template data for a new project.
type ProjectConfig struct {
	// Name is the registry name.
	Name string

	// Description is a short registry description.
	Description string

	// TypeScript selects .tsx/.ts starter files.
	TypeScript bool

	// Tailwind mentions Tailwind in the starter docs.
	Tailwind bool
}

// ComponentConfig contains template data for a new component.
type ComponentConfig struct {
	// Name is the component name, kebab-case.
	Name string

	// DisplayName is the PascalCase identifier used in source.
	DisplayName string

	// Category is the component category.
	Category string

	// TypeScript selects the .tsx starter over .jsx.
	TypeScript bool
}

// Template is a named set of files to generate.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents. Paths and
	// contents both run through text/template with the config data.
	Files map[string]string
}

// Component templates available to the add command.
var componentTemplates = map[string]*Template{
	"component": componentTemplate(),
	"hook":      hookTemplate(),
	"utility":   utilityTemplate(),
}

// GetComponent returns a component template by name.
func GetComponent(name string) (*Template, error) {
	tmpl, ok := componentTemplates[name]
	if !ok {
		return nil, errors.New("E506").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: " + listNames())
	}
	return tmpl, nil
}

// List returns all component template names, sorted.
func List() []string {
	names := make([]string, 0, len(componentTemplates))
	for name := range componentTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func listNames() string {
	out := ""
	for i, name := range List() {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

// Create generates the template's files under dir with the given
// data. Existing files are not overwritten; scaffolding never
// clobbers user edits.
func (t *Template) Create(dir string, data any) error {
	for relPath, content := range t.Files {
		path, err := render(relPath, relPath, data)
		if err != nil {
			return err
		}
		body, err := render(relPath+":content", content, data)
		if err != nil {
			return err
		}

		dest := filepath.Join(dir, path)
		if _, err := os.Stat(dest); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Newf(errors.CategoryCLI, "cannot create %s: %v", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, []byte(body), 0644); err != nil {
			return errors.Newf(errors.CategoryCLI, "cannot write %s: %v", dest, err)
		}
	}
	return nil
}

func render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", errors.Newf(errors.CategoryCLI, "invalid template %s: %v", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Newf(errors.CategoryCLI, "template execute error %s: %v", name, err)
	}
	return buf.String(), nil
}
