package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// readinessChecker is any dependency that can report whether it is usable.
type readinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	lookup  readinessChecker
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// WithLookup adds the reference-data cache to the readiness checks.
func (h *HealthHandler) WithLookup(lookup readinessChecker) *HealthHandler {
	h.lookup = lookup
	return h
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
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// Ready is the readiness probe: 200 once the database answers and the
// lookup cache is loaded, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if h.db.Ping(ctx) != nil || (h.lookup != nil && h.lookup.Ready(ctx) != nil) {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}

// Health reports every component with its probe latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": probe(ctx, h.db.Ping)}
	if h.lookup != nil {
		components["lookup"] = probe(ctx, h.lookup.Ready)
	}

	overall, code := "ok", http.StatusOK
	for _, c := range components {
		if c.Status != "ok" {
			overall, code = "down", http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now().UTC(),
	})
}

func probe(ctx context.Context, fn func(context.Context) error) CompStatus {
	start := time.Now()
	if err := fn(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

// writeJSON writes a bare JSON body. Probes are not enveloped.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
