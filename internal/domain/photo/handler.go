package photo

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hoardspot/hoardspot-api/internal/pkg/imaging"
	"github.com/hoardspot/hoardspot-api/internal/pkg/response"
)

// Handler handles photo HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates photo handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Upload handles POST /spaces/{id}/photos (multipart/form-data, field "file")
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid space ID")
		return
	}

	if err := r.ParseMultipartForm(imaging.MaxFileSize); err != nil {
		response.BadRequest(w, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field")
		return
	}
	defer file.Close()

	p, err := h.svc.Upload(r.Context(), spaceID, header.Filename, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFileType),
			errors.Is(err, ErrFileTooLarge),
			errors.Is(err, ErrTooManyPhotos):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, p.ToResponse())
}

// ListBySpace handles GET /spaces/{id}/photos
func (h *Handler) ListBySpace(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid space ID")
		return
	}

	photos, err := h.svc.ListBySpace(r.Context(), spaceID)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = p.ToResponse()
	}
	response.OK(w, items)
}

// Delete handles DELETE /photos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photo ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.NotFound(w, "Photo not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// SetCover handles PATCH /spaces/{id}/photos/{photoID}/cover
func (h *Handler) SetCover(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid space ID")
		return
	}
	photoID, err := uuid.Parse(chi.URLParam(r, "photoID"))
	if err != nil {
		response.BadRequest(w, "Invalid photo ID")
		return
	}

	if err := h.svc.SetCover(r.Context(), spaceID, photoID); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.NotFound(w, "Photo not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"status": "updated"})
}
