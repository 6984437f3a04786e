package manifest

import (
	"strings"
	"testing"
	"time"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
)

var now = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func TestBuildIndex(t *testing.T) {
	components := []descriptor.Component{
		{
			Name:        "button",
			DisplayName: "Button",
			Description: "A button",
			Category:    "ui",
			Version:     "1.0.0",
			Tags:        []string{"form"},
			Files:       []descriptor.File{{Name: "Button", Path: "button.tsx", Type: descriptor.FileComponent}},
		},
		{
			Name:        "card",
			DisplayName: "Card",
			Category:    "layout",
			Version:     "2.1.0",
			Tags:        []string{},
		},
	}

	index := BuildIndex(components, []string{"layout", "ui"}, now)

	if index.TotalComponents != 2 {
		t.Errorf("TotalComponents = %d", index.TotalComponents)
	}
	if len(index.Components) != 2 {
		t.Fatalf("len(Components) = %d", len(index.Components))
	}
	if index.Components[0].FileCount != 1 || index.Components[1].FileCount != 0 {
		t.Errorf("file counts = %d, %d", index.Components[0].FileCount, index.Components[1].FileCount)
	}
	if !index.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v", index.GeneratedAt)
	}
}

func TestBuildDependencies_ExcludesDev(t *testing.T) {
	components := []descriptor.Component{
		{
			Name: "button",
			Dependencies: []descriptor.Dependency{
				{Name: "clsx", Version: "2.0.0"},
				{Name: "vitest", Version: "1.0.0", Dev: true},
			},
			PeerDependencies: []descriptor.Dependency{
				{Name: "react", Version: "18.0.0"},
			},
		},
	}

	deps, warnings := BuildDependencies(components, now)

	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if _, present := deps.Dependencies["vitest"]; present {
		t.Error("dev dependency leaked into manifest")
	}
	if deps.Dependencies["clsx"] != "2.0.0" {
		t.Errorf("clsx = %q", deps.Dependencies["clsx"])
	}
	if deps.PeerDependencies["react"] != "18.0.0" {
		t.Errorf("react = %q", deps.PeerDependencies["react"])
	}
	if deps.ComponentCount != 1 {
		t.Errorf("ComponentCount = %d", deps.ComponentCount)
	}
}

func TestBuildDependencies_HighestSemverWins(t *testing.T) {
	components := []descriptor.Component{
		{Name: "button", Dependencies: []descriptor.Dependency{{Name: "clsx", Version: "2.1.0"}}},
		{Name: "card", Dependencies: []descriptor.Dependency{{Name: "clsx", Version: "2.0.0"}}},
	}

	deps, warnings := BuildDependencies(components, now)

	if deps.Dependencies["clsx"] != "2.1.0" {
		t.Errorf("clsx = %q, want highest version", deps.Dependencies["clsx"])
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "clsx") {
		t.Errorf("warnings = %v, want one naming clsx", warnings)
	}
}

func TestBuildDependencies_UnparseableFallsBackToLastWrite(t *testing.T) {
	components := []descriptor.Component{
		{Name: "button", Dependencies: []descriptor.Dependency{{Name: "left-pad", Version: "workspace:*"}}},
		{Name: "card", Dependencies: []descriptor.Dependency{{Name: "left-pad", Version: "latest"}}},
	}

	deps, warnings := BuildDependencies(components, now)

	if deps.Dependencies["left-pad"] != "latest" {
		t.Errorf("left-pad = %q, want last declaration", deps.Dependencies["left-pad"])
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestBuildDependencies_ConcreteBeatsEmpty(t *testing.T) {
	components := []descriptor.Component{
		{Name: "button", Dependencies: []descriptor.Dependency{{Name: "clsx", Version: "2.0.0"}}},
		{Name: "card", Dependencies: []descriptor.Dependency{{Name: "clsx"}}},
	}

	deps, _ := BuildDependencies(components, now)
	if deps.Dependencies["clsx"] != "2.0.0" {
		t.Errorf("clsx = %q, concrete version should win over empty", deps.Dependencies["clsx"])
	}
}

func TestBuildDependencies_InstallOrder(t *testing.T) {
	components := []descriptor.Component{
		{Name: "badge"},
		{Name: "button"},
		{Name: "card", RegistryDependencies: []string{"button"}},
		{Name: "dialog", RegistryDependencies: []string{"card", "missing"}},
	}

	deps, _ := BuildDependencies(components, now)

	if len(deps.InstallOrder) != 4 {
		t.Fatalf("installOrder = %v, want all four components", deps.InstallOrder)
	}
	pos := make(map[string]int, len(deps.InstallOrder))
	for i, name := range deps.InstallOrder {
		pos[name] = i
	}
	if pos["button"] > pos["card"] || pos["card"] > pos["dialog"] {
		t.Errorf("installOrder = %v, dependencies must come first", deps.InstallOrder)
	}
	if _, present := pos["missing"]; present {
		t.Error("dangling registry dependency leaked into the order")
	}
}

func TestBuildDependencies_SameVersionNoWarning(t *testing.T) {
	components := []descriptor.Component{
		{Name: "button", Dependencies: []descriptor.Dependency{{Name: "clsx", Version: "2.0.0"}}},
		{Name: "card", Dependencies: []descriptor.Dependency{{Name: "clsx", Version: "2.0.0"}}},
	}

	_, warnings := BuildDependencies(components, now)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none for agreeing versions", warnings)
	}
}
