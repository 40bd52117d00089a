// Package server exposes the extraction pipeline over HTTP: upload a PDF,
// receive the derived data/schema/rules, validate edits, and export the
// final tree. It orchestrates the collaborators around the pure core and
// guarantees at most one extraction is in flight at a time.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/Rejishankar/docform/pkg/document"
	"github.com/Rejishankar/docform/pkg/extract"
)

// Server is the HTTP orchestration layer.
type Server struct {
	cfg       Config
	logger    *slog.Logger
	intake    *document.Intake
	extractor extract.Extractor
	sessions  *SessionStore

	// extracting admits a single in-flight extraction; two result trees
	// racing to populate the same display state must be impossible.
	extracting *semaphore.Weighted
}

// Option customises the server configuration.
type Option func(*Server)

// WithExtractor replaces the Gemini-backed extractor, mainly for tests and
// alternative model providers.
func WithExtractor(extractor extract.Extractor) Option {
	return func(s *Server) {
		s.extractor = extractor
	}
}

// New constructs a Server. The extractor defaults to the configured Gemini
// client; construction fails only when no extractor is available.
func New(cfg Config, options ...Option) (*Server, error) {
	cfg.defaults()

	s := &Server{
		cfg:        cfg,
		logger:     cfg.Logger,
		intake:     document.NewIntake(cfg.Document),
		sessions:   NewSessionStore(),
		extracting: semaphore.NewWeighted(1),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.extractor == nil {
		gemini, err := extract.NewGemini(cfg.Gemini)
		if err != nil {
			return nil, err
		}
		s.extractor = gemini
	}
	return s, nil
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Get("/health", s.handleHealth)
	r.Post("/extract-pdf", s.handleExtractPDF)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/export", s.handleExport)
	})
	return r
}

// ListenAndServe runs the HTTP server until it fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting docform service", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Router())
}

// cors mirrors the original frontend integration: one allowed origin,
// credentials permitted, preflight short-circuited.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
