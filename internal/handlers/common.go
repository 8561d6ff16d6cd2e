// Package handlers implements the JSON API behind the serve command.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mcaralp/esde-steam-manager/internal/service"
)

type Handler struct {
	svc *service.Service
}

// New builds the API handler around an existing service.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}
