package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hoardspot/hoardspot-api/internal/pkg/response"
	"github.com/hoardspot/hoardspot-api/internal/pkg/validator"
)

// SnapshotProvider resolves the listing snapshot used for email
// rendering. A failed lookup is non-fatal: the booking proceeds without
// emails.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, id uuid.UUID) (*SpaceSnapshot, error)
}

// Handler handles booking HTTP requests
type Handler struct {
	svc    *Service
	spaces SnapshotProvider
}

// NewHandler creates booking handler
func NewHandler(svc *Service, spaces SnapshotProvider) *Handler {
	return &Handler{svc: svc, spaces: spaces}
}

// CheckAvailability handles GET /spaces/{id}/availability
func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	mediaID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid space ID")
		return
	}

	start, err := time.Parse(DateLayout, r.URL.Query().Get("start_date"))
	if err != nil {
		response.BadRequest(w, "start_date must be a valid YYYY-MM-DD date")
		return
	}
	end, err := time.Parse(DateLayout, r.URL.Query().Get("end_date"))
	if err != nil {
		response.BadRequest(w, "end_date must be a valid YYYY-MM-DD date")
		return
	}
	if start.After(end) {
		response.BadRequest(w, "start_date must not be after end_date")
		return
	}

	result := h.svc.CheckAvailability(r.Context(), mediaID, start, end)
	response.OK(w, result.ToResponse())
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var snapshot *SpaceSnapshot
	if mediaID, err := uuid.Parse(req.MediaID); err == nil {
		snapshot, err = h.spaces.Snapshot(r.Context(), mediaID)
		if err != nil {
			// No snapshot means no emails, nothing more
			log.Warn().Err(err).Str("media_id", req.MediaID).Msg("Space snapshot lookup failed")
			snapshot = nil
		}
	}

	b, err := h.svc.CreateBooking(r.Context(), &req, snapshot)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingContact),
			errors.Is(err, ErrInvalidDateRange),
			errors.Is(err, ErrInvalidMediaID):
			response.BadRequest(w, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "BOOKING_NOT_SAVED", ErrBookingNotAccepted.Error())
		}
		return
	}

	response.Created(w, b.ToResponse())
}

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, b.ToResponse())
}

// ListByMedia handles GET /spaces/{id}/bookings
func (h *Handler) ListByMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid space ID")
		return
	}

	limit := 50
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	bookings, total, err := h.svc.ListByMedia(r.Context(), mediaID, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = b.ToResponse()
	}

	response.OK(w, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, Status(req.Status)); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"status": "updated"})
}
