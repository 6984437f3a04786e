package config

import (
	"os"
	"path/filepath"
	"testing"

	ferrors "github.com/jackcharlielopez/forge-cli/internal/errors"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.ComponentsDir != DefaultComponentsDir {
		t.Errorf("ComponentsDir = %q, want %q", cfg.ComponentsDir, DefaultComponentsDir)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if len(cfg.Categories) == 0 {
		t.Error("Categories should default to the suggested list")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing forge.json")
	}

	fe, ok := err.(*ferrors.ForgeError)
	if !ok {
		t.Fatalf("error type = %T, want *ForgeError", err)
	}
	if fe.Code != "E101" {
		t.Errorf("Code = %q, want E101", fe.Code)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if fe, ok := err.(*ferrors.ForgeError); !ok || fe.Code != "E102" {
		t.Errorf("err = %v, want E102", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"name":"acme-ui"}`), 0644)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Name != "acme-ui" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.ComponentsDir != DefaultComponentsDir {
		t.Errorf("ComponentsDir = %q, want default", cfg.ComponentsDir)
	}
	if cfg.Version != "0.1.0" {
		t.Errorf("Version = %q, want 0.1.0", cfg.Version)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want default", cfg.Serve.Host)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := New()
	cfg.Name = "acme-ui"
	cfg.RegistryURL = "https://ui.acme.dev/registry.json"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Name != "acme-ui" {
		t.Errorf("Name = %q", loaded.Name)
	}
	if loaded.RegistryURL != cfg.RegistryURL {
		t.Errorf("RegistryURL = %q", loaded.RegistryURL)
	}
	if loaded.Path() != path {
		t.Errorf("Path() = %q, want %q", loaded.Path(), path)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Serve.Port = 99999
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range port")
	}

	cfg = New()
	cfg.Publish.S3 = &S3Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for S3 target without bucket")
	}

	cfg = New()
	cfg.Publish.S3 = &S3Config{Bucket: "my-registry"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.SaveTo(filepath.Join(dir, ConfigFileName))

	if got, want := cfg.ComponentsPath(), filepath.Join(dir, "components"); got != want {
		t.Errorf("ComponentsPath = %q, want %q", got, want)
	}
	if got, want := cfg.OutputPath(), filepath.Join(dir, "dist"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got, want := cfg.ComponentPath("button"), filepath.Join(dir, "components", "button"); got != want {
		t.Errorf("ComponentPath = %q, want %q", got, want)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "components", "button")
	os.MkdirAll(nested, 0755)

	cfg := New()
	cfg.SaveTo(filepath.Join(root, ConfigFileName))

	found, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	// Resolve symlinks so macOS /private/var temp dirs compare equal.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(found)
	if gotResolved != wantResolved {
		t.Errorf("root = %q, want %q", found, root)
	}
}

func TestFindProjectRoot_NotFound(t *testing.T) {
	_, err := FindProjectRoot(t.TempDir())
	if err == nil {
		t.Error("expected error when no forge.json exists")
	}
}

func TestServeURL(t *testing.T) {
	cfg := New()
	if got := cfg.ServeURL(); got != "http://localhost:4300" {
		t.Errorf("ServeURL = %q", got)
	}
}
