package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/daybookhq/daybook/internal/dashboard"
	"github.com/daybookhq/daybook/internal/tasks"
	"github.com/daybookhq/daybook/internal/types"
)

// DefaultUser is the user scope applied when a request does not name one.
// The service is single-tenant per deployment; the header exists so a
// multi-profile deployment can partition its data.
const DefaultUser = "default"

// userHeader names the request header carrying the user scope.
const userHeader = "X-Daybook-User"

// Handler implements the API handlers.
type Handler struct {
	compositor *dashboard.Compositor
	tasks      *tasks.Service
	apiKey     string
	version    string
}

// NewHandler creates a new Handler.
func NewHandler(compositor *dashboard.Compositor, taskSvc *tasks.Service, apiKey, version string) *Handler {
	return &Handler{
		compositor: compositor,
		tasks:      taskSvc,
		apiKey:     apiKey,
		version:    version,
	}
}

// HealthResponse is the GET /api/v1/health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}

// Health returns the health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Dashboard handles GET /api/v1/dashboard. It assembles one snapshot at the
// moment of the request; any repository failure fails the whole request with
// no partial body.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := userFromRequest(r)

	snapshot, err := h.compositor.Snapshot(r.Context(), userID, time.Now().UTC())
	if err != nil {
		slog.Error("snapshot failed", "error", err, "user", userID)
		MapStoreError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}

// CompleteTaskResponse is the POST /api/v1/tasks/{id}/complete payload.
type CompleteTaskResponse struct {
	Task           *types.Task `json:"task"`
	NextOccurrence *types.Task `json:"nextOccurrence,omitempty"`
}

// CompleteTask handles POST /api/v1/tasks/{id}/complete. Completing a
// recurring task also creates its next occurrence.
func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	userID := userFromRequest(r)
	taskID := chi.URLParam(r, "id")

	task, next, err := h.tasks.Complete(r.Context(), userID, taskID, time.Now().UTC())
	if err != nil {
		slog.Error("task completion failed", "error", err, "task_id", taskID, "user", userID)
		MapStoreError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompleteTaskResponse{Task: task, NextOccurrence: next})
}

// ReopenTask handles POST /api/v1/tasks/{id}/reopen, clearing a completion.
func (h *Handler) ReopenTask(w http.ResponseWriter, r *http.Request) {
	userID := userFromRequest(r)
	taskID := chi.URLParam(r, "id")

	task, err := h.tasks.Reopen(r.Context(), userID, taskID)
	if err != nil {
		slog.Error("task reopen failed", "error", err, "task_id", taskID, "user", userID)
		MapStoreError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompleteTaskResponse{Task: task})
}

func userFromRequest(r *http.Request) string {
	if user := r.Header.Get(userHeader); user != "" {
		return user
	}
	return DefaultUser
}
