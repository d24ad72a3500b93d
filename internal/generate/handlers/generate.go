package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"floorplan-server/internal/generate"
	appconfig "floorplan-server/internal/shared/config"
	"floorplan-server/internal/shared/errors"
	"floorplan-server/internal/shared/response"
)

type GenerateHandler struct {
	service *generate.Service
}

func NewGenerateHandler(service *generate.Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "generate")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	// Absent fields keep the configured defaults; explicit values override.
	defaults := appconfig.GlobalConfig.Layout
	req := generate.Request{
		Width:  defaults.DefaultWidth,
		Depth:  defaults.DefaultDepth,
		Floors: defaults.DefaultFloors,
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	result, err := h.service.Generate(ctx, req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}
