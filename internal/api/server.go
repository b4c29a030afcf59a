// Package api provides the HTTP server for Retrofolio: the terminal
// chat endpoint, the assistant endpoint, and the engagement REST API.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samuel-avson/retrofolio/internal/app/assistant"
	"github.com/samuel-avson/retrofolio/internal/app/engagement"
	"github.com/samuel-avson/retrofolio/internal/app/interpreter"
	"github.com/samuel-avson/retrofolio/internal/health"
)

// Server is the Retrofolio HTTP API server.
type Server struct {
	engine      *engagement.Engine
	interp      *interpreter.Interpreter
	assistant   *assistant.Assistant
	checker     *health.Checker
	corsOrigins []string

	// Serializes the read-modify-write-persist sequence; handlers
	// run concurrently but state mutations must not interleave.
	mu sync.Mutex

	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(engine *engagement.Engine, interp *interpreter.Interpreter, asst *assistant.Assistant, checker *health.Checker, corsOrigins []string) *Server {
	return &Server{
		engine:      engine,
		interp:      interp,
		assistant:   asst,
		checker:     checker,
		corsOrigins: corsOrigins,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/assistant", s.handleAssistant)

		r.Route("/engagement", func(r chi.Router) {
			r.Get("/state", s.handleState)
			r.Get("/achievements", s.handleAchievements)
			r.Get("/toast", s.handleToast)
			r.Post("/session", s.handleSession)
			r.Post("/scroll", s.handleScroll)
			r.Post("/project-view", s.handleProjectView)
			r.Post("/unlock/{id}", s.handleUnlock)
			r.Post("/toast/clear", s.handleToastClear)
		})
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if !s.checker.IsHealthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"healthy": s.checker.IsHealthy(),
		"checks":  s.checker.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the browser frontend.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	origin := "*"
	if len(s.corsOrigins) == 1 {
		origin = s.corsOrigins[0]
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
