package enquiry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hoardspot/hoardspot-api/internal/pkg/response"
	"github.com/hoardspot/hoardspot-api/internal/pkg/validator"
)

// Handler handles enquiry HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates enquiry handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /enquiries (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	e, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, &EnquirySubmittedResponse{
		EnquiryID: e.ID,
		Message:   "Thanks for your enquiry! A media planner will reach out within one working day.",
	})
}

// List handles GET /enquiries
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
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

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	enquiries, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*EnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		items[i] = ToResponse(e)
	}

	response.OK(w, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

// GetByID handles GET /enquiries/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid enquiry ID")
		return
	}

	e, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEnquiryNotFound) {
			response.NotFound(w, "Enquiry not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(e))
}

// UpdateStatus handles PATCH /enquiries/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid enquiry ID")
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

	if err := h.svc.UpdateStatus(r.Context(), id, Status(req.Status), req.Notes); err != nil {
		switch {
		case errors.Is(err, ErrEnquiryNotFound):
			response.NotFound(w, "Enquiry not found")
		case errors.Is(err, ErrEnquiryClosed):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"status": "updated"})
}

// Stats handles GET /enquiries/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, stats)
}
