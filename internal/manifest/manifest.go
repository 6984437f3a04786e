// Package manifest derives the secondary machine-readable artifacts
// from a built registry: the flat component index and the merged
// dependency manifest.
package manifest

import (
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
	"github.com/jackcharlielopez/forge-cli/internal/graph"
)

const (
	// IndexFileName is the flat index written to the output root.
	IndexFileName = "index.json"

	// DependenciesFileName is the dependency manifest file.
	DependenciesFileName = "dependencies.json"
)

// IndexEntry is the compact listing for one component.
type IndexEntry struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Version     string   `json:"version"`
	Tags        []string `json:"tags"`
	FileCount   int      `json:"fileCount"`
}

// Index is the flat component index document.
type Index struct {
	Components      []IndexEntry `json:"components"`
	Categories      []string     `json:"categories"`
	TotalComponents int          `json:"totalComponents"`
	GeneratedAt     time.Time    `json:"generatedAt"`
}

// BuildIndex derives the flat index from the accepted components.
// The input is expected in registry order (sorted by name).
func BuildIndex(components []descriptor.Component, categories []string, at time.Time) *Index {
	index := &Index{
		Components:      make([]IndexEntry, 0, len(components)),
		Categories:      categories,
		TotalComponents: len(components),
		GeneratedAt:     at,
	}
	for _, c := range components {
		index.Components = append(index.Components, IndexEntry{
			Name:        c.Name,
			DisplayName: c.DisplayName,
			Description: c.Description,
			Category:    c.Category,
			Version:     c.Version,
			Tags:        c.Tags,
			FileCount:   len(c.Files),
		})
	}
	return index
}

// Dependencies is the merged dependency manifest.
type Dependencies struct {
	Dependencies     map[string]string `json:"dependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	InstallOrder     []string          `json:"installOrder,omitempty"`
	ComponentCount   int               `json:"componentCount"`
	GeneratedAt      time.Time         `json:"generatedAt"`
}

// BuildDependencies merges every component's non-dev dependencies and
// all peer dependencies into flat name to version mappings. When two
// components pin different versions of the same dependency the
// highest semantic version wins; versions that do not parse fall back
// to last-write-wins over the name-sorted component order. Every
// conflict is reported as a warning either way.
func BuildDependencies(components []descriptor.Component, at time.Time) (*Dependencies, []string) {
	deps := &Dependencies{
		Dependencies:     make(map[string]string),
		PeerDependencies: make(map[string]string),
		ComponentCount:   len(components),
		GeneratedAt:      at,
	}
	var warnings []string

	for _, c := range components {
		for _, d := range c.Dependencies {
			if d.Dev {
				continue
			}
			warnings = append(warnings, merge(deps.Dependencies, d.Name, d.Version, c.Name)...)
		}
		for _, d := range c.PeerDependencies {
			warnings = append(warnings, merge(deps.PeerDependencies, d.Name, d.Version, c.Name)...)
		}
	}

	deps.InstallOrder = installOrder(components)

	sort.Strings(warnings)
	return deps, warnings
}

// installOrder sorts the components by their registry dependencies,
// dependencies first, so a consumer can install the whole registry in
// one pass. The builder rejects cyclic inputs before this runs; if a
// cycle slips through anyway the field is omitted rather than wrong.
func installOrder(components []descriptor.Component) []string {
	g := graph.New()
	for _, c := range components {
		g.AddNode(c.Name)
	}
	for _, c := range components {
		for _, dep := range c.RegistryDependencies {
			if g.HasNode(dep) {
				g.AddEdge(c.Name, dep)
			}
		}
	}

	order, ok := g.TopoSort()
	if !ok {
		return nil
	}
	return order
}

// merge records one dependency declaration into the mapping and
// returns a warning when it conflicts with an earlier declaration.
func merge(into map[string]string, name, version, component string) []string {
	current, seen := into[name]
	if !seen {
		into[name] = version
		return nil
	}
	if current == version {
		return nil
	}

	chosen := pick(current, version)
	into[name] = chosen
	return []string{fmt.Sprintf(
		"dependency %q: %s declares %q, conflicting with %q; keeping %q",
		name, component, display(version), display(current), display(chosen))}
}

// pick resolves a version conflict. A concrete version beats an empty
// one; between two parseable versions the higher wins; otherwise the
// later declaration wins.
func pick(current, incoming string) string {
	if incoming == "" {
		return current
	}
	if current == "" {
		return incoming
	}
	cv, errC := semver.NewVersion(current)
	iv, errI := semver.NewVersion(incoming)
	if errC == nil && errI == nil {
		if cv.GreaterThan(iv) {
			return current
		}
		return incoming
	}
	return incoming
}

func display(version string) string {
	if version == "" {
		return "any"
	}
	return version
}
