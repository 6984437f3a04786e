package validate

import (
	"strings"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
	"github.com/jackcharlielopez/forge-cli/internal/graph"
)

// buildGraph maps the registry-dependency relation over a set of
// sibling components. An edge only exists when the referenced name
// has a descriptor in the set; dangling references are not an error
// here. No filesystem access.
func buildGraph(components map[string]*descriptor.Component) *graph.Graph {
	g := graph.New()
	for name, c := range components {
		g.AddNode(name)
		for _, dep := range c.RegistryDependencies {
			if _, exists := components[dep]; exists {
				g.AddEdge(name, dep)
			}
		}
	}
	return g
}

func cycleError(cycle []string) *errors.ForgeError {
	return errors.New("E306").
		WithComponent(cycle[0]).
		WithDetail(strings.Join(cycle, " -> "))
}

// FindCycles scans the dependency relation once and returns one error
// per detected cycle, naming every component on it, together with the
// set of all participating names.
func FindCycles(components map[string]*descriptor.Component) ([]*errors.ForgeError, map[string]bool) {
	var errs []*errors.ForgeError
	members := make(map[string]bool)
	for _, cycle := range buildGraph(components).Cycles() {
		errs = append(errs, cycleError(cycle))
		for _, name := range cycle {
			members[name] = true
		}
	}
	return errs, members
}

// Cycles returns only the per-cycle errors.
func Cycles(components map[string]*descriptor.Component) []*errors.ForgeError {
	errs, _ := FindCycles(components)
	return errs
}

// CycleMembers returns only the set of component names participating
// in any registry-dependency cycle. Used to exclude offenders while
// keeping the rest of the build.
func CycleMembers(components map[string]*descriptor.Component) map[string]bool {
	_, members := FindCycles(components)
	return members
}

// CyclesTouching reports the cycles in components that pass through at
// least one focus name. Standalone validation of a subset passes the
// whole sibling set here with the named components as focus, so a
// named component cycling through an unnamed sibling is still caught.
func CyclesTouching(components map[string]*descriptor.Component, focus map[string]bool) []*errors.ForgeError {
	var errs []*errors.ForgeError
	for _, cycle := range buildGraph(components).Cycles() {
		for _, name := range cycle {
			if focus[name] {
				errs = append(errs, cycleError(cycle))
				break
			}
		}
	}
	return errs
}
