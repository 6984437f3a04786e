package descriptor

import (
	"strings"
	"testing"
)

const validDescriptor = `{
  "name": "button",
  "displayName": "Button",
  "description": "A clickable button",
  "license": "MIT",
  "files": [
    {"name": "Button", "path": "button.tsx", "type": "component"}
  ],
  "props": [
    {"name": "variant", "type": "string", "default": "primary"}
  ]
}`

func TestParse_Valid(t *testing.T) {
	c, errs := Parse([]byte(validDescriptor))
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if c.Name != "button" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.Category != DefaultCategory {
		t.Errorf("Category = %q, want defaulted %q", c.Category, DefaultCategory)
	}
	if c.Version != DefaultVersion {
		t.Errorf("Version = %q, want defaulted %q", c.Version, DefaultVersion)
	}
	if c.Tags == nil || c.Examples == nil || c.RegistryDependencies == nil {
		t.Error("absent sequences should default to empty, not nil")
	}
	if c.Private || c.Deprecated || c.Experimental {
		t.Error("flags should default to false")
	}
	if len(c.Props) != 1 || c.Props[0].DefaultString() != "primary" {
		t.Errorf("props = %+v", c.Props)
	}
}

func TestParse_NotJSON(t *testing.T) {
	_, errs := Parse([]byte("{broken"))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Code != "E201" {
		t.Errorf("Code = %q, want E201", errs[0].Code)
	}
}

func TestParse_MissingRequiredFields(t *testing.T) {
	_, errs := Parse([]byte(`{"name": "button"}`))
	if len(errs) == 0 {
		t.Fatal("expected schema violations")
	}
	for _, e := range errs {
		if e.Code != "E202" {
			t.Errorf("Code = %q, want E202", e.Code)
		}
	}
}

func TestParse_WrongTypes(t *testing.T) {
	raw := `{
	  "name": "button",
	  "displayName": "Button",
	  "description": "x",
	  "license": "MIT",
	  "props": "not-an-array"
	}`
	_, errs := Parse([]byte(raw))
	if len(errs) == 0 {
		t.Fatal("expected schema violation for props type")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e.Field, "props") {
			found = true
		}
	}
	if !found {
		t.Errorf("no violation referenced the props field: %v", errs)
	}
}

func TestParse_BadName(t *testing.T) {
	tests := []string{"Button", "1button", "button_x", "-button", ""}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			raw := `{
			  "name": "` + name + `",
			  "displayName": "Button",
			  "description": "x",
			  "license": "MIT"
			}`
			_, errs := Parse([]byte(raw))
			if len(errs) == 0 {
				t.Fatalf("name %q should be rejected", name)
			}
			// Empty names fail the schema minLength; the rest hit E203.
			if name != "" && errs[0].Code != "E203" {
				t.Errorf("Code = %q, want E203", errs[0].Code)
			}
		})
	}
}

func TestParse_BadVersion(t *testing.T) {
	raw := `{
	  "name": "button",
	  "displayName": "Button",
	  "description": "x",
	  "license": "MIT",
	  "version": "not-a-version"
	}`
	_, errs := Parse([]byte(raw))
	if len(errs) != 1 || errs[0].Code != "E204" {
		t.Fatalf("errs = %v, want one E204", errs)
	}
}

func TestParse_BadFileType(t *testing.T) {
	raw := `{
	  "name": "button",
	  "displayName": "Button",
	  "description": "x",
	  "license": "MIT",
	  "files": [{"name": "Button", "path": "button.tsx", "type": "widget"}]
	}`
	_, errs := Parse([]byte(raw))
	if len(errs) == 0 {
		t.Fatal("expected enum violation for file type")
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"button", "date-picker", "a", "x1"}
	invalid := []string{"", "Button", "1x", "-x", "x_y", "x y"}

	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}

func TestProp_HasDefault(t *testing.T) {
	if (Prop{Name: "x", Type: "string"}).HasDefault() {
		t.Error("prop without default reports HasDefault")
	}
	if !(Prop{Name: "x", Type: "bool", Default: false}).HasDefault() {
		t.Error("false is still a declared default")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	c, errs := Parse([]byte(validDescriptor))
	if len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	data, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("marshaled descriptor should end with newline")
	}

	again, errs := Parse(data)
	if len(errs) > 0 {
		t.Fatalf("re-parse errors: %v", errs)
	}
	if again.Name != c.Name || again.Version != c.Version {
		t.Error("round trip changed descriptor identity")
	}
}
