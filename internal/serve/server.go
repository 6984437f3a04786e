// Package serve runs the local preview server for a built registry:
// the docs site, the registry artifacts, live reload under watch
// mode, and a metrics endpoint.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jackcharlielopez/forge-cli/internal/config"
)

// Options configures the preview server.
type Options struct {
	// LiveReload injects the reload script into served HTML pages.
	LiveReload bool

	// Quiet suppresses per-request logging.
	Quiet bool
}

// Server serves the output directory over HTTP.
type Server struct {
	config     *config.Config
	options    Options
	reload     *ReloadServer
	httpServer *http.Server
}

// New creates a preview server for the given project.
func New(cfg *config.Config, options Options) *Server {
	return &Server{
		config:  cfg,
		options: options,
		reload:  NewReloadServer(),
	}
}

// Reload returns the live reload broadcaster, for watch mode to
// notify after rebuilds.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

// Start runs the server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	r := chi.NewRouter()
	if !s.options.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(tracing)

	r.Get("/__forge/reload", s.reload.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/*", s.serveFile)

	s.httpServer = &http.Server{
		Addr:    s.config.ServeAddress(),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.reload.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// serveFile serves a path from the output directory. Requests for the
// root fall through to the docs index, and HTML responses get the
// reload script appended when live reload is on.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	out := s.config.OutputPath()

	rel := strings.TrimPrefix(r.URL.Path, "/")
	if rel == "" {
		rel = "docs/index.html"
	}

	path := filepath.Join(out, filepath.FromSlash(rel))
	// Keep requests inside the output tree.
	if !strings.HasPrefix(path, filepath.Clean(out)+string(os.PathSeparator)) && path != filepath.Clean(out) {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		info, err = os.Stat(path)
	}
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if s.options.LiveReload && strings.HasSuffix(path, ".html") {
		data, err := os.ReadFile(path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(injectReloadScript(data))
		return
	}

	http.ServeFile(w, r, path)
}

// injectReloadScript appends the reload script before </body>, or at
// the end when no closing tag exists.
func injectReloadScript(html []byte) []byte {
	page := string(html)
	if idx := strings.LastIndex(page, "</body>"); idx >= 0 {
		return []byte(page[:idx] + reloadScript + page[idx:])
	}
	return append(html, []byte(reloadScript)...)
}

// URL returns the address the server listens on, for user output.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s", s.config.ServeAddress())
}
