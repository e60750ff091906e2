package booking

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns booking routes mounted at /bookings
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}/status", h.UpdateStatus)

	return r
}
