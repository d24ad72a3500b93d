package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"floorplan-server/internal/shared/database"
	"floorplan-server/internal/shared/response"
)

// visibleTableLimit caps how many table names the diagnostic reports.
const visibleTableLimit = 10

type HealthResponse struct {
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Database  string   `json:"database"`
	Tables    []string `json:"tables,omitempty"`
}

type HealthHandler struct {
	db *database.DB // nil when the database is disabled
}

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	dbStatus := "not configured"
	var tables []string

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			dbStatus = "disconnected"
			logger.Warn("Database ping failed", "error", err)
		} else {
			dbStatus = "connected"
			tables, _ = h.db.ListTables(r.Context(), visibleTableLimit)
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  dbStatus,
		Tables:    tables,
	}

	response.Success(w, http.StatusOK, resp)
}
