package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hoardspot/hoardspot-api/internal/domain/booking"
	"github.com/hoardspot/hoardspot-api/internal/domain/enquiry"
	"github.com/hoardspot/hoardspot-api/internal/domain/photo"
	"github.com/hoardspot/hoardspot-api/internal/domain/space"
	"github.com/hoardspot/hoardspot-api/internal/pkg/imaging"
)

var (
	routedSpaceID   = uuid.New()
	routedBookingID = uuid.New()
	routedEnquiryID = uuid.New()
	routedPhotoID   = uuid.New()
)

type stubSpaceRepo struct{}

func (stubSpaceRepo) Create(ctx context.Context, s *space.Space) error { return nil }

func (stubSpaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*space.Space, error) {
	if id != routedSpaceID {
		return nil, nil
	}
	return &space.Space{
		ID:            id,
		Title:         "MG Road Hoarding",
		Slug:          "mg-road-hoarding-bengaluru",
		MediaType:     space.MediaHoarding,
		City:          "Bengaluru",
		Address:       "MG Road",
		Illumination:  space.IlluminationFrontLit,
		PricePerMonth: 85000,
		Available:     true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

func (stubSpaceRepo) GetBySlug(ctx context.Context, slug string) (*space.Space, error) {
	return nil, nil
}
func (stubSpaceRepo) Update(ctx context.Context, s *space.Space) error { return nil }
func (stubSpaceRepo) List(ctx context.Context, filter space.Filter, limit, offset int) ([]*space.Space, int, error) {
	return nil, 0, nil
}
func (stubSpaceRepo) ListInBounds(ctx context.Context, bounds space.Bounds) ([]*space.Space, error) {
	return nil, nil
}
func (stubSpaceRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return nil
}
func (stubSpaceRepo) SetCoverPhoto(ctx context.Context, id uuid.UUID, url string) error { return nil }

type stubBookingRepo struct{}

func (stubBookingRepo) Create(ctx context.Context, b *booking.Booking) error { return nil }

func (stubBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return &booking.Booking{
		ID:           id,
		MediaID:      routedSpaceID,
		StartDate:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
		ClientName:   "Asha Verma",
		ClientEmail:  "asha@example.in",
		BookingPrice: 255000,
		Period:       3,
		Code:         123456,
		Status:       booking.StatusPending,
		CreatedAt:    time.Now(),
	}, nil
}

func (stubBookingRepo) ListActiveByMedia(ctx context.Context, mediaID uuid.UUID) ([]*booking.Booking, error) {
	return nil, nil
}
func (stubBookingRepo) ListByMedia(ctx context.Context, mediaID uuid.UUID, limit, offset int) ([]*booking.Booking, int, error) {
	return nil, 0, nil
}
func (stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	return nil
}

type stubEnquiryRepo struct{}

func (stubEnquiryRepo) Create(ctx context.Context, e *enquiry.Enquiry) error { return nil }

func (stubEnquiryRepo) GetByID(ctx context.Context, id uuid.UUID) (*enquiry.Enquiry, error) {
	return &enquiry.Enquiry{
		ID:           id,
		ContactName:  "Rahul Nair",
		ContactEmail: "rahul@example.in",
		Status:       enquiry.StatusNew,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

func (stubEnquiryRepo) List(ctx context.Context, status *enquiry.Status, limit, offset int) ([]*enquiry.Enquiry, int, error) {
	return nil, 0, nil
}
func (stubEnquiryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enquiry.Status, notes string) error {
	return nil
}
func (stubEnquiryRepo) CountByStatus(ctx context.Context) (map[enquiry.Status]int, error) {
	return map[enquiry.Status]int{}, nil
}

type stubPhotoRepo struct{}

func (stubPhotoRepo) Create(ctx context.Context, p *photo.Photo) error { return nil }

func (stubPhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*photo.Photo, error) {
	return &photo.Photo{
		ID:        id,
		SpaceID:   routedSpaceID,
		Key:       "spaces/key",
		ThumbKey:  "spaces/key_thumb",
		URL:       "https://media.test/spaces/key",
		ThumbURL:  "https://media.test/spaces/key_thumb",
		CreatedAt: time.Now(),
	}, nil
}

func (stubPhotoRepo) ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*photo.Photo, error) {
	return nil, nil
}
func (stubPhotoRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (stubPhotoRepo) SetCover(ctx context.Context, spaceID, photoID uuid.UUID) error {
	return nil
}
func (stubPhotoRepo) CountBySpace(ctx context.Context, spaceID uuid.UUID) (int, error) {
	return 0, nil
}

type stubStorage struct{}

func (stubStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	return nil
}
func (stubStorage) Delete(ctx context.Context, key string) error { return nil }
func (stubStorage) GetURL(key string) string                     { return "https://media.test/" + key }

func newTestServer() http.Handler {
	spaceService := space.NewService(stubSpaceRepo{}, space.NewCache(nil, 0))
	spaceHandler := space.NewHandler(spaceService)

	bookingService := booking.NewService(stubBookingRepo{}, nil)
	bookingHandler := booking.NewHandler(bookingService, &spaceSnapshotAdapter{svc: spaceService})

	enquiryHandler := enquiry.NewHandler(enquiry.NewService(stubEnquiryRepo{}, nil))

	photoService := photo.NewService(stubPhotoRepo{}, stubStorage{}, imaging.NewProcessor(imaging.DefaultConfig()), nil)
	photoHandler := photo.NewHandler(photoService)

	return newRouter(nil, spaceHandler, bookingHandler, enquiryHandler, photoHandler)
}

// Every public endpoint must resolve through the assembled router. The
// nested space subroutes (availability, bookings, photos) are the ones
// that regress when the /spaces tree gets split across sibling routes.
func TestRouterResolvesAllEndpoints(t *testing.T) {
	router := newTestServer()

	sid := routedSpaceID.String()
	bid := routedBookingID.String()
	eid := routedEnquiryID.String()
	pid := routedPhotoID.String()

	cases := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"list spaces", http.MethodGet, "/api/v1/spaces", http.StatusOK},
		{"map discovery", http.MethodGet, "/api/v1/spaces/map?sw_lat=12.8&sw_lng=77.4&ne_lat=13.1&ne_lng=77.8", http.StatusOK},
		{"space detail", http.MethodGet, "/api/v1/spaces/" + sid, http.StatusOK},
		{"create space", http.MethodPost, "/api/v1/spaces", http.StatusBadRequest},
		{"update space", http.MethodPut, "/api/v1/spaces/" + sid, http.StatusBadRequest},
		{"set space availability", http.MethodPatch, "/api/v1/spaces/" + sid + "/availability", http.StatusBadRequest},
		{"availability check", http.MethodGet, "/api/v1/spaces/" + sid + "/availability?start_date=2024-06-01&end_date=2024-06-30", http.StatusOK},
		{"bookings for space", http.MethodGet, "/api/v1/spaces/" + sid + "/bookings", http.StatusOK},
		{"photos for space", http.MethodGet, "/api/v1/spaces/" + sid + "/photos", http.StatusOK},
		{"upload photo", http.MethodPost, "/api/v1/spaces/" + sid + "/photos", http.StatusBadRequest},
		{"set cover photo", http.MethodPatch, "/api/v1/spaces/" + sid + "/photos/" + pid + "/cover", http.StatusOK},
		{"create booking", http.MethodPost, "/api/v1/bookings", http.StatusBadRequest},
		{"booking detail", http.MethodGet, "/api/v1/bookings/" + bid, http.StatusOK},
		{"booking status", http.MethodPatch, "/api/v1/bookings/" + bid + "/status", http.StatusBadRequest},
		{"delete photo", http.MethodDelete, "/api/v1/photos/" + pid, http.StatusNoContent},
		{"submit enquiry", http.MethodPost, "/api/v1/enquiries", http.StatusBadRequest},
		{"list enquiries", http.MethodGet, "/api/v1/enquiries", http.StatusOK},
		{"enquiry stats", http.MethodGet, "/api/v1/enquiries/stats", http.StatusOK},
		{"enquiry detail", http.MethodGet, "/api/v1/enquiries/" + eid, http.StatusOK},
		{"enquiry status", http.MethodPatch, "/api/v1/enquiries/" + eid + "/status", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code == http.StatusNotFound && tc.want != http.StatusNotFound {
				t.Fatalf("%s %s did not resolve: got 404, body %q", tc.method, tc.path, rec.Body.String())
			}
			if rec.Code != tc.want {
				t.Fatalf("%s %s = %d, want %d (body %q)", tc.method, tc.path, rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}
