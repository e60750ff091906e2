package space

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DetailRoutes carries the subroutes from other domains that hang off a
// single listing: availability checks, booking lists, photo management.
// They register inside the space router's /{id} subtree so the whole
// /spaces surface lives on one chi node and nothing shadows the mount.
type DetailRoutes struct {
	CheckAvailability http.HandlerFunc
	ListBookings      http.HandlerFunc
	Photos            chi.Router
}

// Routes returns space routes mounted at /spaces
func (h *Handler) Routes(detail DetailRoutes) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/map", h.Map)
	r.Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Put("/", h.Update)
		r.Patch("/availability", h.SetAvailability)

		if detail.CheckAvailability != nil {
			r.Get("/availability", detail.CheckAvailability)
		}
		if detail.ListBookings != nil {
			r.Get("/bookings", detail.ListBookings)
		}
		if detail.Photos != nil {
			r.Mount("/photos", detail.Photos)
		}
	})

	return r
}
