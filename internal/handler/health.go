package handler

import (
	"net/http"
	"time"

	"github.com/duetmatch/duet/api/internal/database"
)

// HealthHandler reports service and store health
type HealthHandler struct {
	store database.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store database.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// healthResponse is the body of a health check
type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Time   string `json:"time"`
}

// Check handles GET /healthz - liveness and store reachability
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "ok",
		Store:  "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if err := h.store.Ping(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Store = "unreachable"
		status = http.StatusServiceUnavailable
	}

	WriteJSON(w, status, resp)
}
