package enquiry

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns enquiry routes mounted at /enquiries
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	// Public submission
	r.Post("/", h.Submit)

	// Ops surface
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Patch("/status", h.UpdateStatus)
	})

	return r
}
