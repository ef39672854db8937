// Package server serves a built site for local development.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/jralvarenga/r1go.dev/internal/model"
	"github.com/jralvarenga/r1go.dev/internal/posts"
)

// Server serves the output directory and the post summaries of the most
// recent successful build.
type Server struct {
	outputDir string
	log       *slog.Logger

	mu   sync.RWMutex
	site *model.SiteData
}

// New returns a Server for outputDir.
func New(outputDir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{outputDir: outputDir, log: log}
}

// SetSite swaps in the data of a new build.
func (s *Server) SetSite(site *model.SiteData) {
	s.mu.Lock()
	s.site = site
	s.mu.Unlock()
}

func (s *Server) current() *model.SiteData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Routes returns the HTTP handler of the development server.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(noCache)

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", s.listPosts)
		r.Get("/*", s.getPost)
	})

	r.Handle("/*", s.static())
	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	site := s.current()
	if site == nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, errorResponse{Error: "site not built yet"})
		return
	}

	summaries := site.Summaries
	if r.URL.Query().Get("archived") == "false" {
		summaries = site.Current
	}
	if summaries == nil {
		summaries = []posts.Summary{}
	}
	render.JSON(w, r, summaries)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	site := s.current()
	if site == nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, errorResponse{Error: "site not built yet"})
		return
	}

	slug := strings.Trim(chi.URLParam(r, "*"), "/")
	entry, ok := site.Post(slug)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "post not found"})
		return
	}
	render.JSON(w, r, entry.Summary)
}

// static serves the output directory without directory listings.
func (s *Server) static() http.Handler {
	files := http.FileServer(http.Dir(s.outputDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(s.outputDir, filepath.FromSlash(path.Clean(r.URL.Path)), "index.html")); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status())
	})
}
