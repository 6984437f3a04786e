package registry

import (
	"sort"
	"time"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
)

// RegistryFileName is the aggregate document written to the output root.
const RegistryFileName = "registry.json"

// Registry is the aggregate document produced by a build. It is wholly
// derived from the component directories and regenerated on every
// build; it is never hand-edited.
type Registry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
	Author      string `json:"author,omitempty"`
	License     string `json:"license,omitempty"`
	Repository  string `json:"repository,omitempty"`
	Homepage    string `json:"homepage,omitempty"`

	Components []descriptor.Component `json:"components"`

	// Categories and Tags are derived from the accepted components.
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// Find returns the component with the given name, or nil.
func (r *Registry) Find(name string) *descriptor.Component {
	for i := range r.Components {
		if r.Components[i].Name == name {
			return &r.Components[i]
		}
	}
	return nil
}

// ByCategory groups components under their category, preserving the
// registry's name ordering within each group.
func (r *Registry) ByCategory() map[string][]descriptor.Component {
	groups := make(map[string][]descriptor.Component)
	for _, c := range r.Components {
		groups[c.Category] = append(groups[c.Category], c)
	}
	return groups
}

// deriveSets computes the sorted category and tag sets from the
// component list.
func (r *Registry) deriveSets() {
	categories := make(map[string]struct{})
	tags := make(map[string]struct{})
	for _, c := range r.Components {
		categories[c.Category] = struct{}{}
		for _, tag := range c.Tags {
			tags[tag] = struct{}{}
		}
	}
	r.Categories = sortedKeys(categories)
	r.Tags = sortedKeys(tags)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
