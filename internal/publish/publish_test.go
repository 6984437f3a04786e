package publish

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	ferrors "github.com/jackcharlielopez/forge-cli/internal/errors"
)

func TestForConfig_NoTarget(t *testing.T) {
	cfg := config.New()
	_, err := ForConfig(cfg)
	if err == nil {
		t.Fatal("expected error without publish targets")
	}
	if fe, ok := err.(*ferrors.ForgeError); !ok || fe.Code != "E601" {
		t.Errorf("err = %v, want E601", err)
	}
}

func TestForConfig_BothTargets(t *testing.T) {
	cfg := config.New()
	cfg.Publish.S3 = &config.S3Config{Bucket: "my-registry"}
	cfg.Publish.Git = &config.GitConfig{Branch: "gh-pages"}

	publishers, err := ForConfig(cfg)
	if err != nil {
		t.Fatalf("ForConfig error: %v", err)
	}
	if len(publishers) != 2 {
		t.Fatalf("got %d publishers, want 2", len(publishers))
	}
	if publishers[0].Name() != "s3://my-registry" {
		t.Errorf("Name = %q", publishers[0].Name())
	}
	if publishers[1].Name() != "git:origin/gh-pages" {
		t.Errorf("Name = %q", publishers[1].Name())
	}
}

// fakeS3 records uploaded keys and content types.
type fakeS3 struct {
	keys  []string
	types map[string]string
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.keys = append(f.keys, *params.Key)
	if f.types == nil {
		f.types = make(map[string]string)
	}
	f.types[*params.Key] = *params.ContentType
	return &s3.PutObjectOutput{}, nil
}

func TestS3Publish_UploadsTree(t *testing.T) {
	out := t.TempDir()
	os.MkdirAll(filepath.Join(out, "docs"), 0755)
	os.WriteFile(filepath.Join(out, "registry.json"), []byte("{}"), 0644)
	os.WriteFile(filepath.Join(out, "docs", "index.html"), []byte("<html>"), 0644)
	os.WriteFile(filepath.Join(out, "docs", "style.css"), []byte("body{}"), 0644)

	fake := &fakeS3{}
	p := NewS3Publisher(&config.S3Config{Bucket: "my-registry", Prefix: "registry"})
	p.client = fake

	if err := p.Publish(context.Background(), out); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	sort.Strings(fake.keys)
	want := []string{
		"registry/docs/index.html",
		"registry/docs/style.css",
		"registry/registry.json",
	}
	if len(fake.keys) != len(want) {
		t.Fatalf("keys = %v", fake.keys)
	}
	for i, key := range want {
		if fake.keys[i] != key {
			t.Errorf("key[%d] = %q, want %q", i, fake.keys[i], key)
		}
	}
	if fake.types["registry/registry.json"] != "application/json" {
		t.Errorf("content type = %q", fake.types["registry/registry.json"])
	}
	if fake.types["registry/docs/index.html"] != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", fake.types["registry/docs/index.html"])
	}
}

func TestS3Key_NoPrefix(t *testing.T) {
	p := NewS3Publisher(&config.S3Config{Bucket: "b"})
	if got := p.key(filepath.Join("docs", "index.html")); got != "docs/index.html" {
		t.Errorf("key = %q", got)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"registry.json": "application/json",
		"index.html":    "text/html; charset=utf-8",
		"style.css":     "text/css; charset=utf-8",
		"button.tsx":    "text/plain; charset=utf-8",
		"logo.svg":      "image/svg+xml",
		"README":        "application/octet-stream",
	}
	for path, want := range tests {
		if got := contentType(path); got != want {
			t.Errorf("contentType(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestGitPublish_NotARepo(t *testing.T) {
	p := NewGitPublisher(t.TempDir(), &config.GitConfig{})
	err := p.Publish(context.Background(), "dist")
	if err == nil {
		t.Fatal("expected error outside a git repository")
	}
	if fe, ok := err.(*ferrors.ForgeError); !ok || fe.Code != "E603" {
		t.Errorf("err = %v, want E603", err)
	}
}

func TestGitPublisher_Defaults(t *testing.T) {
	p := NewGitPublisher("/tmp/x", &config.GitConfig{})
	if p.remote() != "origin" || p.branch() != "registry" {
		t.Errorf("defaults = %s/%s", p.remote(), p.branch())
	}
}
