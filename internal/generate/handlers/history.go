package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"floorplan-server/internal/generate"
	"floorplan-server/internal/middleware"
	appconfig "floorplan-server/internal/shared/config"
	"floorplan-server/internal/shared/errors"
	"floorplan-server/internal/shared/response"
)

type HistoryHandler struct {
	service *generate.Service
}

func NewHistoryHandler(service *generate.Service) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "history")

	limit := appconfig.GlobalConfig.Layout.HistoryLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid limit format", err))
			return
		}
		if parsed < 1 || parsed > limit {
			response.Error(w, r, logger,
				errors.Validationf("limit must be between 1 and %d", limit))
			return
		}
		limit = parsed
	}

	records, err := h.service.History(ctx, limit)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if records == nil {
		records = []generate.Record{}
	}

	response.Success(w, http.StatusOK, records)
}

type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

type PurgeHandler struct {
	service *generate.Service
}

func NewPurgeHandler(service *generate.Service) *PurgeHandler {
	return &PurgeHandler{service: service}
}

func (h *PurgeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "purge_history")

	deleted, err := h.service.PurgeHistory(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if claims := middleware.ClaimsFromContext(r); claims != nil {
		logger.Info("History purged by operator", "subject", claims.Subject, "deleted", deleted)
	}

	response.Success(w, http.StatusOK, PurgeResponse{Deleted: deleted})
}
