package validator

import "testing"

type listingFields struct {
	MediaType    string `json:"media_type" validate:"required,media_type"`
	Illumination string `json:"illumination" validate:"required,illumination"`
}

func TestCustomListingTags(t *testing.T) {
	if errs := Validate(&listingFields{MediaType: "hoarding", Illumination: "back_lit"}); errs != nil {
		t.Fatalf("valid values rejected: %v", errs)
	}

	errs := Validate(&listingFields{MediaType: "billboard", Illumination: "neon"})
	if errs == nil {
		t.Fatal("invalid values accepted")
	}
	if msg, ok := errs["media_type"]; !ok || msg == "Invalid value" {
		t.Fatalf("media_type should fail with its own message, got %q", msg)
	}
	if msg, ok := errs["illumination"]; !ok || msg == "Invalid value" {
		t.Fatalf("illumination should fail with its own message, got %q", msg)
	}
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	errs := Validate(&listingFields{})
	if errs == nil {
		t.Fatal("empty struct should fail required checks")
	}
	if _, ok := errs["MediaType"]; ok {
		t.Fatal("errors must be keyed by JSON names, not Go field names")
	}
	if _, ok := errs["media_type"]; !ok {
		t.Fatalf("missing media_type error, got %v", errs)
	}
}
