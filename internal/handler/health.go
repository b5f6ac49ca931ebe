package handler

import (
	"net/http"
	"time"

	"tweet-timeline-cache/pkg/response"
)

// StartTime tracks when the server started for uptime calculation
var StartTime = time.Now()

// HealthHandler serves liveness and status endpoints.
type HealthHandler struct {
	storeType string
	window    time.Duration
	version   string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(storeType string, window time.Duration, version string) *HealthHandler {
	return &HealthHandler{
		storeType: storeType,
		window:    window,
		version:   version,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Health handles GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	}
	response.OK(w, resp)
}

// StatusResponse reports runtime configuration and uptime.
type StatusResponse struct {
	Status          string `json:"status"`
	Store           string `json:"store"`
	FreshnessWindow string `json:"freshness_window"`
	Uptime          string `json:"uptime"`
	Version         string `json:"version"`
}

// Status handles GET /api/status
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Status:          "ok",
		Store:           h.storeType,
		FreshnessWindow: h.window.String(),
		Uptime:          time.Since(StartTime).Round(time.Second).String(),
		Version:         h.version,
	}
	response.OK(w, resp)
}
