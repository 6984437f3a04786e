package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
)

func testSite() Site {
	return Site{
		Name:    "acme-ui",
		Version: "1.2.0",
		Components: []descriptor.Component{
			{
				Name:        "button",
				DisplayName: "Button",
				Description: "A clickable button",
				Category:    "ui",
				Version:     "1.0.0",
				License:     "MIT",
				Props: []descriptor.Prop{
					{Name: "variant", Type: "string", Default: "primary"},
					{Name: "onClick", Type: "() => void", Required: true},
				},
				Files: []descriptor.File{
					{Name: "Button", Path: "button.tsx", Type: descriptor.FileComponent},
				},
				Dependencies: []descriptor.Dependency{
					{Name: "clsx", Version: "2.0.0"},
					{Name: "vitest", Version: "1.0.0", Dev: true},
				},
				Examples: []string{"<Button>Click me</Button>"},
			},
			{
				Name:        "use-toggle",
				DisplayName: "useToggle",
				Description: "Boolean state hook",
				Category:    "hooks",
				Version:     "1.1.0",
				License:     "MIT",
			},
		},
		Categories:  []string{"hooks", "ui"},
		GeneratedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_WritesTree(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(testSite(), dir); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for _, path := range []string{
		"index.html",
		"style.css",
		filepath.Join("components", "button.html"),
		filepath.Join("components", "use-toggle.html"),
	} {
		if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}
}

func TestGenerate_IndexGroupsByCategory(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(testSite(), dir); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	html := readFile(t, filepath.Join(dir, "index.html"))

	// Category sections with counts, sorted order.
	hooksAt := strings.Index(html, "hooks <span class=\"count\">(1)</span>")
	uiAt := strings.Index(html, "ui <span class=\"count\">(1)</span>")
	if hooksAt < 0 || uiAt < 0 {
		t.Fatal("index is missing category headings with counts")
	}
	if hooksAt > uiAt {
		t.Error("categories should appear in sorted order")
	}
	if !strings.Contains(html, `href="components/button.html"`) {
		t.Error("index should link to component pages")
	}
}

func TestGenerate_ComponentPage(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(testSite(), dir); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	html := readFile(t, filepath.Join(dir, "components", "button.html"))

	if !strings.Contains(html, "forge add button") {
		t.Error("page should contain install instructions")
	}
	// Required prop without default shows the dash placeholder.
	if !strings.Contains(html, "—") {
		t.Error("absent optional fields should render as a dash")
	}
	if !strings.Contains(html, "primary") {
		t.Error("prop default value missing")
	}
	if !strings.Contains(html, "clsx") {
		t.Error("non-dev dependency missing")
	}
	if strings.Contains(html, "vitest") {
		t.Error("dev dependency should not be listed")
	}
	if !strings.Contains(html, "button.tsx") {
		t.Error("file listing missing")
	}
}

func TestGenerate_EscapesContent(t *testing.T) {
	site := testSite()
	site.Components[0].Description = `<script>alert("x")</script>`

	dir := t.TempDir()
	if err := Generate(site, dir); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	html := readFile(t, filepath.Join(dir, "components", "button.html"))
	if strings.Contains(html, `<script>alert`) {
		t.Error("descriptor content must be HTML-escaped")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	site := testSite()

	if err := Generate(site, dirA); err != nil {
		t.Fatal(err)
	}
	if err := Generate(site, dirB); err != nil {
		t.Fatal(err)
	}

	a := readFile(t, filepath.Join(dirA, "index.html"))
	b := readFile(t, filepath.Join(dirB, "index.html"))
	if a != b {
		t.Error("same input should produce identical output")
	}
}

func TestGroups(t *testing.T) {
	groups := testSite().Groups()
	if len(groups) != 2 {
		t.Fatalf("got %d groups", len(groups))
	}
	if groups[0].Name != "hooks" || groups[1].Name != "ui" {
		t.Errorf("group order = %s, %s", groups[0].Name, groups[1].Name)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
