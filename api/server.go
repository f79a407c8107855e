// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"net/http"
	"time"

	"ticket-upgrade/core/engine"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server over a fresh engine
func NewServer(version string) *Server {
	return NewServerWithEngine(version, engine.New())
}

// NewServerWithEngine creates a new API server over an existing engine
func NewServerWithEngine(version string, eng *engine.Engine) *Server {
	s := &Server{
		handler: NewHandler(eng, version),
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote", s.handler.HandleQuote)
	s.mux.HandleFunc("POST /validate", s.handler.HandleValidate)
	s.mux.HandleFunc("POST /select", s.handler.HandleSelect)

	// Read endpoints
	s.mux.HandleFunc("GET /comparison", s.handler.HandleComparison)
	s.mux.HandleFunc("GET /best-dates", s.handler.HandleBestDates)
	s.mux.HandleFunc("GET /calendar", s.handler.HandleCalendar)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.handler.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.handler.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "ticket-upgrade",
	}, http.StatusOK)
}
