package space

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeSpaceRepo struct {
	spaces    map[uuid.UUID]*Space
	createErr error
}

func newFakeSpaceRepo() *fakeSpaceRepo {
	return &fakeSpaceRepo{spaces: make(map[uuid.UUID]*Space)}
}

func (f *fakeSpaceRepo) Create(ctx context.Context, s *Space) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.spaces[s.ID] = s
	return nil
}

func (f *fakeSpaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*Space, error) {
	return f.spaces[id], nil
}

func (f *fakeSpaceRepo) GetBySlug(ctx context.Context, slug string) (*Space, error) {
	for _, s := range f.spaces {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSpaceRepo) Update(ctx context.Context, s *Space) error {
	f.spaces[s.ID] = s
	return nil
}

func (f *fakeSpaceRepo) List(ctx context.Context, filter Filter, limit, offset int) ([]*Space, int, error) {
	var out []*Space
	for _, s := range f.spaces {
		out = append(out, s)
	}
	return out, len(out), nil
}

func (f *fakeSpaceRepo) ListInBounds(ctx context.Context, bounds Bounds) ([]*Space, error) {
	var out []*Space
	for _, s := range f.spaces {
		if s.Latitude >= bounds.SWLat && s.Latitude <= bounds.NELat &&
			s.Longitude >= bounds.SWLng && s.Longitude <= bounds.NELng {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSpaceRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if s, ok := f.spaces[id]; ok {
		s.Available = available
	}
	return nil
}

func (f *fakeSpaceRepo) SetCoverPhoto(ctx context.Context, id uuid.UUID, url string) error {
	return nil
}

func validSpaceRequest() *CreateRequest {
	return &CreateRequest{
		Title:            "Linking Road Hoarding",
		MediaType:        "hoarding",
		City:             "Mumbai",
		Area:             "Bandra West",
		Address:          "Linking Road, opposite Shoppers Stop",
		Latitude:         19.0607,
		Longitude:        72.8362,
		WidthFt:          40,
		HeightFt:         20,
		Illumination:     "front_lit",
		VisibilityRating: 9,
		TrafficEstimate:  120000,
		PricePerMonth:    85000,
	}
}

func TestCreateSpaceDefaults(t *testing.T) {
	repo := newFakeSpaceRepo()
	svc := NewService(repo, NewCache(nil, 0))

	sp, err := svc.Create(context.Background(), validSpaceRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !sp.Available {
		t.Fatal("new spaces must start available")
	}
	if sp.Slug != "linking-road-hoarding-mumbai" {
		t.Fatalf("slug = %q", sp.Slug)
	}
	if !sp.TrafficEstimate.Valid || sp.TrafficEstimate.Int64 != 120000 {
		t.Fatal("traffic estimate not stored")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newFakeSpaceRepo(), NewCache(nil, 0))

	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, ErrSpaceNotFound) {
		t.Fatalf("err = %v, want ErrSpaceNotFound", err)
	}
}

func TestListInBoundsRejectsMalformedBox(t *testing.T) {
	svc := NewService(newFakeSpaceRepo(), NewCache(nil, 0))

	// South-west corner north of the north-east corner
	_, err := svc.ListInBounds(context.Background(), Bounds{SWLat: 20, SWLng: 72, NELat: 18, NELng: 73})
	if !errors.Is(err, ErrInvalidBoundingBox) {
		t.Fatalf("err = %v, want ErrInvalidBoundingBox", err)
	}
}

func TestListInBoundsFiltersByViewport(t *testing.T) {
	repo := newFakeSpaceRepo()
	svc := NewService(repo, NewCache(nil, 0))

	mumbai := validSpaceRequest()
	delhi := validSpaceRequest()
	delhi.Title = "Connaught Place Gantry"
	delhi.City = "Delhi"
	delhi.Latitude = 28.6315
	delhi.Longitude = 77.2167

	if _, err := svc.Create(context.Background(), mumbai); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), delhi); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Viewport over Mumbai only
	got, err := svc.ListInBounds(context.Background(), Bounds{SWLat: 18.8, SWLng: 72.7, NELat: 19.3, NELng: 73.1})
	if err != nil {
		t.Fatalf("ListInBounds failed: %v", err)
	}
	if len(got) != 1 || got[0].City != "Mumbai" {
		t.Fatalf("expected only the Mumbai space, got %d results", len(got))
	}
}

func TestSetAvailabilityUnknownSpace(t *testing.T) {
	svc := NewService(newFakeSpaceRepo(), NewCache(nil, 0))

	if err := svc.SetAvailability(context.Background(), uuid.New(), false); !errors.Is(err, ErrSpaceNotFound) {
		t.Fatalf("err = %v, want ErrSpaceNotFound", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"Linking Road Hoarding", "Mumbai"}, "linking-road-hoarding-mumbai"},
		{[]string{"MG Road / Brigade Rd Junction", "Bengaluru"}, "mg-road-brigade-rd-junction-bengaluru"},
		{[]string{"Sector 18", "Noida"}, "sector-18-noida"},
		{[]string{"  Odd   Spacing  ", "Pune"}, "odd-spacing-pune"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.parts...); got != tc.want {
			t.Errorf("Slugify(%v) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}
