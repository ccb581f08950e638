// Package api provides the local HTTP server for Keel.
// Screens poll these endpoints after each mutation; the engine emits no
// events of its own.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/keel-app/keel/internal/app/coach"
	"github.com/keel-app/keel/internal/app/engagement"
	"github.com/keel-app/keel/internal/health"
)

// Server is the Keel HTTP API server.
type Server struct {
	engine         *engagement.Engine
	checker        *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server around the engine.
func NewServer(engine *engagement.Engine) *Server {
	return &Server{engine: engine}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealthChecker wires the daemon's health checker into /health.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/progress", s.handleProgress)
		r.Get("/summary", s.handleSummary)
		r.Get("/streak", s.handleStreak)
		r.Post("/activity", s.handleActivity)

		r.Post("/tasks/complete", s.handleTaskComplete)
		r.Post("/tasks/revoke", s.handleTaskRevoke)

		r.Get("/achievements", s.handleAchievements)
		r.Post("/achievements/evaluate", s.handleEvaluateAchievements)

		r.Get("/commitment", s.handleActiveCommitment)
		r.Post("/commitment", s.handleCreateCommitment)
		r.Get("/commitment/history", s.handleCommitmentHistory)
		r.Post("/commitment/{id}/complete", s.handleCompleteCommitment)
		r.Post("/commitment/{id}/resolve", s.handleResolveCommitment)
		r.Delete("/commitment/{id}", s.handleDeleteCommitment)

		r.Post("/coach", s.handleCoach)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// handleHealth reports daemon health from the periodic checker.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	status := http.StatusOK
	if !s.checker.IsHealthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"healthy": s.checker.IsHealthy(),
		"checks":  s.checker.Statuses(),
	})
}

// handleCoach returns a canned encouragement for the given message.
// Keyword lookup over a fixed rule table; no inference involved.
func (s *Server) handleCoach(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"response": coach.Respond(req.Message),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local app shell.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
