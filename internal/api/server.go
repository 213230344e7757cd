// Package api exposes the extraction pipeline over HTTP. Handlers
// consume run summaries and output paths only; they never reach into
// the extraction internals.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gridsift/app"
)

// Server is the HTTP surface over the extraction service.
type Server struct {
	router     *chi.Mux
	extract    *app.ExtractService
	uploadsDir string
	outputRoot string
}

// NewServer creates the API server. Uploaded files are staged under
// uploadsDir; run outputs are resolved under outputRoot.
func NewServer(extract *app.ExtractService, uploadsDir, outputRoot string) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		extract:    extract,
		uploadsDir: uploadsDir,
		outputRoot: outputRoot,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/runs", s.handleCreateRun)
	s.router.Get("/runs/{runID}/summary", s.handleRunSummary)
	s.router.Get("/runs/{runID}/report", s.handleRunReport)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
