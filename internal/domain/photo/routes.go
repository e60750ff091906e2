package photo

import (
	"github.com/go-chi/chi/v5"
)

// SpaceRoutes returns photo routes mounted at /spaces/{id}/photos
func (h *Handler) SpaceRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListBySpace)
	r.Post("/", h.Upload)
	r.Patch("/{photoID}/cover", h.SetCover)

	return r
}

// Routes returns photo routes mounted at /photos
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Delete("/{id}", h.Delete)

	return r
}
