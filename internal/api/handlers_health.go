package api

import (
	"net/http"

	"github.com/iammorganparry/seans/internal/models"
	"github.com/iammorganparry/seans/internal/store"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:       "ok",
		SessionCount: h.store.Len(),
	})
}
