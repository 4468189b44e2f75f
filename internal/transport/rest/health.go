package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// storeStats reports how many edit requests are currently held.
type storeStats interface {
	Stats() (pending, submitted int)
}

// HealthOptions describes deployment facts surfaced by the health endpoints.
type HealthOptions struct {
	Version string
	// WebhooksConfigured is false while either workflow URL is a placeholder.
	WebhooksConfigured bool
	RewriteEnabled     bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store storeStats
	opts  HealthOptions
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store storeStats, opts HealthOptions) *HealthHandler {
	return &HealthHandler{store: store, opts: opts}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status    string `json:"status"`
	Pending   *int   `json:"pending,omitempty"`
	Submitted *int   `json:"submitted,omitempty"`
}

// InfoResponse is the JSON response for GET /.
type InfoResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Endpoints []string  `json:"endpoints"`
	Timestamp time.Time `json:"timestamp"`
}

var endpoints = []string{
	"POST /create",
	"GET /edit/{id}",
	"POST /submit/{id}",
	"GET /status/{id}",
	"POST /webhook",
	"POST /webhook/action",
	"POST /api/rewrite",
}

// Info describes the service and its endpoints.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		Status:    "ok",
		Service:   "email-review-relay",
		Version:   h.opts.Version,
		Endpoints: endpoints,
		Timestamp: time.Now(),
	})
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 503 until both workflow webhooks are configured.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.opts.WebhooksConfigured {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component status and version.
// Unconfigured optional parts are reported as degraded, never as down.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	pending, submitted := h.store.Stats()

	components := map[string]CompStatus{
		"store": {Status: "ok", Pending: &pending, Submitted: &submitted},
	}
	overallStatus := "ok"

	components["webhook"] = CompStatus{Status: "ok"}
	if !h.opts.WebhooksConfigured {
		components["webhook"] = CompStatus{Status: "unconfigured"}
		overallStatus = "degraded"
	}

	components["rewrite"] = CompStatus{Status: "ok"}
	if !h.opts.RewriteEnabled {
		components["rewrite"] = CompStatus{Status: "unconfigured"}
		overallStatus = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     overallStatus,
		Version:    h.opts.Version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
