package handlers

import (
	"net/http"

	"floorplan-server/internal/shared/response"
)

type StatusResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Message string `json:"message"`
}

type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Service: "floorplan-server",
		Version: "0.1.0",
		Message: "POST a house description to /api/generate",
	}

	response.Success(w, http.StatusOK, resp)
}
