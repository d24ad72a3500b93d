package server

import (
	"log/slog"
	"net/http"

	"floorplan-server/internal/generate"
	generateHandlers "floorplan-server/internal/generate/handlers"
	"floorplan-server/internal/middleware"
	serverHandlers "floorplan-server/internal/server/handlers"
	"floorplan-server/internal/shared/database"
)

type Routes struct {
	db              *database.DB
	generateService *generate.Service
	logger          *slog.Logger
}

func NewRoutes(db *database.DB, generateService *generate.Service, logger *slog.Logger) *Routes {
	return &Routes{
		db:              db,
		generateService: generateService,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	statusHandler := serverHandlers.NewStatusHandler()
	generateHandler := generateHandlers.NewGenerateHandler(r.generateService)
	historyHandler := generateHandlers.NewHistoryHandler(r.generateService)
	purgeHandler := generateHandlers.NewPurgeHandler(r.generateService)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/status", statusHandler)
	mux.Handle("/api/generate", generateHandler)
	mux.Handle("GET /api/generations", historyHandler)

	// Admin-only endpoints (maintenance token required)
	mux.Handle("DELETE /api/generations", middleware.RequireAdmin(purgeHandler))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/status", "/api/server/health", "/api/generate", "/api/generations"},
		"admin_endpoints", []string{"/api/generations (DELETE)"},
	)

	return mux
}
