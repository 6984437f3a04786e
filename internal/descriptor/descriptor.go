package descriptor

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// FileName is the descriptor file name inside each component directory.
const FileName = "component.json"

const (
	// DefaultCategory is assigned when a descriptor omits category.
	DefaultCategory = "ui"

	// DefaultVersion is assigned when a descriptor omits version.
	DefaultVersion = "1.0.0"
)

// namePattern is the required shape of a component name.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// FileType tags the role of a component file.
type FileType string

const (
	FileComponent FileType = "component"
	FileHook      FileType = "hook"
	FileUtility   FileType = "utility"
	FileTypes     FileType = "type"
)

// Prop describes one component prop.
type Prop struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required,omitempty"`
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// HasDefault reports whether the prop declares a default value.
func (p Prop) HasDefault() bool {
	return p.Default != nil
}

// DefaultString renders the default value for display.
func (p Prop) DefaultString() string {
	if p.Default == nil {
		return ""
	}
	if s, ok := p.Default.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", p.Default)
}

// Dependency describes one package dependency.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Dev     bool   `json:"dev,omitempty"`
}

// File describes one file belonging to a component.
type File struct {
	Name string   `json:"name"`
	Path string   `json:"path"`
	Type FileType `json:"type"`
}

// Component is a fully-defaulted, typed component descriptor.
type Component struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Version     string `json:"version"`
	License     string `json:"license"`
	Author      string `json:"author,omitempty"`

	Props            []Prop       `json:"props"`
	Dependencies     []Dependency `json:"dependencies"`
	PeerDependencies []Dependency `json:"peerDependencies"`
	Files            []File       `json:"files"`
	Examples         []string     `json:"examples"`

	// RegistryDependencies names sibling components this one depends
	// on. Used only for cycle detection, never for installation.
	RegistryDependencies []string `json:"registryDependencies"`

	Tags []string `json:"tags"`

	Private      bool `json:"private,omitempty"`
	Deprecated   bool `json:"deprecated,omitempty"`
	Experimental bool `json:"experimental,omitempty"`
}

// Parse decodes, schema-validates, and defaults a raw descriptor.
// It performs no filesystem access. On failure it returns the list of
// violated constraints; the descriptor is unusable in that case.
func Parse(raw []byte) (*Component, []*errors.ForgeError) {
	violations := ValidateSchema(raw)
	if len(violations) > 0 {
		return nil, violations
	}

	var c Component
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, []*errors.ForgeError{errors.New("E201").WithDetail(err.Error())}
	}

	c.applyDefaults()

	var errs []*errors.ForgeError
	if !namePattern.MatchString(c.Name) {
		errs = append(errs, errors.New("E203").
			WithComponent(c.Name).
			WithField("name").
			WithDetail(fmt.Sprintf("%q does not match [a-z][a-z0-9-]*", c.Name)))
	}
	if _, err := semver.NewVersion(c.Version); err != nil {
		errs = append(errs, errors.New("E204").
			WithComponent(c.Name).
			WithField("version").
			WithDetail(fmt.Sprintf("%q is not a semantic version", c.Version)))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &c, nil
}

// applyDefaults fills in the documented defaults: absent category and
// version get their constants, absent sequences become empty, and
// boolean flags are already false by zero value.
func (c *Component) applyDefaults() {
	if c.Category == "" {
		c.Category = DefaultCategory
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Props == nil {
		c.Props = []Prop{}
	}
	if c.Dependencies == nil {
		c.Dependencies = []Dependency{}
	}
	if c.PeerDependencies == nil {
		c.PeerDependencies = []Dependency{}
	}
	if c.Files == nil {
		c.Files = []File{}
	}
	if c.Examples == nil {
		c.Examples = []string{}
	}
	if c.RegistryDependencies == nil {
		c.RegistryDependencies = []string{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
}

// ValidName reports whether name is a legal component name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Marshal renders the descriptor as indented JSON with a trailing
// newline, the form written back by add/update/fix operations.
func (c *Component) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
