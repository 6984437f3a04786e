package serve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackcharlielopez/forge-cli/internal/config"
)

func testServer(t *testing.T, liveReload bool) *Server {
	t.Helper()
	dir := t.TempDir()

	cfg := config.New()
	cfg.Name = "acme-ui"
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	docs := filepath.Join(cfg.OutputPath(), "docs")
	os.MkdirAll(docs, 0755)
	os.WriteFile(filepath.Join(docs, "index.html"),
		[]byte("<html><body><h1>acme-ui</h1></body></html>"), 0644)
	os.WriteFile(filepath.Join(cfg.OutputPath(), "registry.json"),
		[]byte(`{"name":"acme-ui","components":[]}`), 0644)

	return New(cfg, Options{LiveReload: liveReload, Quiet: true})
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	s.serveFile(rec, req)
	return rec
}

func TestServeFile_RootFallsBackToDocs(t *testing.T) {
	s := testServer(t, false)

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Result().Body)
	if !strings.Contains(string(body), "acme-ui") {
		t.Error("root should serve the docs index")
	}
}

func TestServeFile_RegistryJSON(t *testing.T) {
	s := testServer(t, false)

	rec := get(t, s, "/registry.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Result().Body)
	if !strings.Contains(string(body), `"acme-ui"`) {
		t.Error("registry.json content mismatch")
	}
}

func TestServeFile_NotFound(t *testing.T) {
	s := testServer(t, false)

	if rec := get(t, s, "/nope.json"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeFile_PathTraversalBlocked(t *testing.T) {
	s := testServer(t, false)

	rec := get(t, s, "/../forge.json")
	body, _ := io.ReadAll(rec.Result().Body)
	if strings.Contains(string(body), "componentsDir") {
		t.Error("request escaped the output directory")
	}
}

func TestServeFile_InjectsReloadScript(t *testing.T) {
	s := testServer(t, true)

	rec := get(t, s, "/docs/index.html")
	body, _ := io.ReadAll(rec.Result().Body)
	if !strings.Contains(string(body), "__forge/reload") {
		t.Error("reload script not injected")
	}
	// Script lands before the closing body tag.
	if !strings.Contains(string(body), "</script>\n</body>") {
		t.Errorf("script not placed before </body>: %s", body)
	}
}

func TestServeFile_NoInjectionWithoutLiveReload(t *testing.T) {
	s := testServer(t, false)

	rec := get(t, s, "/docs/index.html")
	body, _ := io.ReadAll(rec.Result().Body)
	if strings.Contains(string(body), "__forge/reload") {
		t.Error("reload script injected without live reload")
	}
}

func TestInjectReloadScript_NoBodyTag(t *testing.T) {
	out := injectReloadScript([]byte("<p>bare fragment</p>"))
	if !strings.Contains(string(out), "__forge/reload") {
		t.Error("script should be appended when no </body> exists")
	}
}

func TestReloadServer_Broadcast(t *testing.T) {
	rs := NewReloadServer()

	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	// No clients connected: broadcast must not panic.
	rs.NotifyReload()
	rs.NotifyError("boom")
	rs.ClearError()

	if rs.ClientCount() != 0 {
		t.Errorf("ClientCount = %d", rs.ClientCount())
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{
		200: "2xx",
		301: "3xx",
		404: "4xx",
		500: "5xx",
	}
	for status, want := range tests {
		if got := statusClass(status); got != want {
			t.Errorf("statusClass(%d) = %q, want %q", status, got, want)
		}
	}
}
