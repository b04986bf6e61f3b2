package http

import (
	"net/http"

	"github.com/avdeyev/go-journal-keeper/internal/utils"
	"github.com/avdeyev/go-journal-keeper/models"
)

// root handles GET / with a short welcome message so that hitting the bare
// service address confirms it is up.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "journal keeper is running",
	}, http.StatusOK)
}

// healthcheck handles GET /healthcheck for liveness probes.
func (h *Handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
