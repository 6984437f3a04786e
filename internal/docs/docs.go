// Package docs renders the static documentation site from a built
// registry: one overview page grouped by category plus one detail
// page per component. Rendering is a pure function of its input;
// validation happens earlier in the pipeline.
package docs

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
)

// Site is everything the generator needs from a built registry.
type Site struct {
	Name        string
	Description string
	Version     string
	Components  []descriptor.Component
	Categories  []string
	GeneratedAt time.Time
}

// CategoryGroup is one category section on the overview page.
type CategoryGroup struct {
	Name       string
	Count      int
	Components []descriptor.Component
}

// Groups returns the components grouped by category, categories in
// sorted order, components in registry order within each.
func (s Site) Groups() []CategoryGroup {
	byCategory := make(map[string][]descriptor.Component)
	for _, c := range s.Components {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, CategoryGroup{
			Name:       name,
			Count:      len(byCategory[name]),
			Components: byCategory[name],
		})
	}
	return groups
}

// funcs are the helpers available to both templates.
var funcs = template.FuncMap{
	// dash substitutes the em dash placeholder for absent optionals.
	"dash": func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	},
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "—"
	},
	"propDefault": func(p descriptor.Prop) string {
		if !p.HasDefault() {
			return "—"
		}
		return p.DefaultString()
	},
	"install": func(name string) string {
		return fmt.Sprintf("forge add %s", name)
	},
	"nonDev": func(deps []descriptor.Dependency) []descriptor.Dependency {
		var out []descriptor.Dependency
		for _, d := range deps {
			if !d.Dev {
				out = append(out, d)
			}
		}
		return out
	},
}

var (
	indexTmpl     = template.Must(template.New("index").Funcs(funcs).Parse(indexTemplate))
	componentTmpl = template.Must(template.New("component").Funcs(funcs).Parse(componentTemplate))
)

// Generate writes the documentation tree under dir: index.html,
// style.css, and components/<name>.html per component. Existing
// files are overwritten; nothing is diffed.
func Generate(site Site, dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "components"), 0755); err != nil {
		return err
	}

	if err := render(indexTmpl, site, filepath.Join(dir, "index.html")); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte(styleSheet), 0644); err != nil {
		return err
	}

	for _, c := range site.Components {
		page := componentPage{Site: site, Component: c}
		dest := filepath.Join(dir, "components", c.Name+".html")
		if err := render(componentTmpl, page, dest); err != nil {
			return err
		}
	}
	return nil
}

// componentPage is the data for one detail page.
type componentPage struct {
	Site      Site
	Component descriptor.Component
}

func render(tmpl *template.Template, data any, dest string) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	return os.WriteFile(dest, buf.Bytes(), 0644)
}
