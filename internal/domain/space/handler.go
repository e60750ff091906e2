package space

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

// Handler handles space HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates space handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /spaces
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := Filter{
		City:          q.Get("city"),
		MediaType:     q.Get("media_type"),
		Illumination:  q.Get("illumination"),
		OnlyAvailable: q.Get("available") != "false",
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil && v > 0 {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil && v > 0 {
		filter.MaxPrice = v
	}
	if v, err := strconv.Atoi(q.Get("min_visibility")); err == nil && v > 0 {
		filter.MinVisibility = v
	}

	limit := 20
	offset := 0
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	spaces, total, err := h.svc.List(r.Context(), filter, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*SpaceResponse, len(spaces))
	for i, sp := range spaces {
		items[i] = sp.ToResponse()
	}

	page := offset/limit + 1
	pages := (total + limit - 1) / limit
	response.WithMeta(w, items, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: offset+limit < total,
		HasPrev: offset > 0,
	})
}

// Map handles GET /spaces/map
func (h *Handler) Map(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	parse := func(key string) (float64, bool) {
		v, err := strconv.ParseFloat(q.Get(key), 64)
		return v, err == nil
	}

	swLat, ok1 := parse("sw_lat")
	swLng, ok2 := parse("sw_lng")
	neLat, ok3 := parse("ne_lat")
	neLng, ok4 := parse("ne_lng")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		response.BadRequest(w, "sw_lat, sw_lng, ne_lat and ne_lng are required")
		return
	}

	spaces, err := h.svc.ListInBounds(r.Context(), Bounds{SWLat: swLat, SWLng: swLng, NELat: neLat, NELng: neLng})
	if err != nil {
		if errors.Is(err, ErrInvalidBoundingBox) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	pins := make([]*MapPin, len(spaces))
	for i, sp := range spaces {
		pins[i] = sp.ToMapPin()
	}
	response.OK(w, pins)
}

// GetByID handles GET /spaces/{id}; slugs are accepted in place of UUIDs
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "id")

	var sp *Space
	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		sp, err = h.svc.GetByID(r.Context(), id)
	} else {
		sp, err = h.svc.GetBySlug(r.Context(), param)
	}

	if err != nil {
		if errors.Is(err, ErrSpaceNotFound) {
			response.NotFound(w, "Space not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, sp.ToResponse())
}

// Create handles POST /spaces
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

	sp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSlugAlreadyUsed) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, sp.ToResponse())
}

// Update handles PUT /spaces/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid space ID")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	sp, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrSpaceNotFound) {
			response.NotFound(w, "Space not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, sp.ToResponse())
}

// SetAvailability handles PATCH /spaces/{id}/availability
func (h *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid space ID")
		return
	}

	var req SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.SetAvailability(r.Context(), id, *req.Available); err != nil {
		if errors.Is(err, ErrSpaceNotFound) {
			response.NotFound(w, "Space not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"status": "updated"})
}
