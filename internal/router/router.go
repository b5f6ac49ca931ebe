package router

import (
	"net/http"

	"tweet-timeline-cache/internal/handler"
	"tweet-timeline-cache/internal/middleware"
	"tweet-timeline-cache/pkg/apierror"
	"tweet-timeline-cache/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	TimelineHandler *handler.TimelineHandler
	HealthHandler   *handler.HealthHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Cache"},
		MaxAge:         86400,
	}))

	// The data endpoint accepts GET only. Anything else is rejected here,
	// before parameter parsing and before any store or upstream I/O.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", http.MethodGet)
		response.Error(w, apierror.MethodNotAllowed("Method not allowed"))
	})

	if cfg.TimelineHandler != nil {
		r.Get("/", cfg.TimelineHandler.GetTimeline)
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Health)
		r.Get("/api/status", cfg.HealthHandler.Status)
	}

	return r
}
