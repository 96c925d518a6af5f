package app_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"hotel_resolver/internal/app"
)

func TestEnrich_MapsFirstCandidate(t *testing.T) {
	full := map[string]any{
		"place_id":           "prov-9",
		"formatted_address":  "99 Shore Drive",
		"rating":             4.2,
		"user_ratings_total": float64(845),
		"price_level":        float64(3),
		"website":            "https://example.test",
		"phone":              "+63 2 555 0100",
		"types":              []any{"lodging", "spa", "restaurant"},
		"editorial_summary":  map[string]any{"overview": "Beachfront pool and breakfast buffet."},
		"photos": []any{
			map[string]any{"photo_reference": "p1"},
			map[string]any{"photo_reference": "p2"},
			map[string]any{"photo_reference": "p3"},
			map[string]any{"photo_reference": "p4"},
			map[string]any{"photo_reference": "p5"},
			map[string]any{"photo_reference": "p6"},
			map[string]any{"photo_reference": "p7"},
		},
		"reviews": []any{
			map[string]any{"text": "Great gym and friendly staff."},
			map[string]any{"text": "Spotless rooms."},
			map[string]any{"text": "Good value."},
			map[string]any{"text": "Would stay again."},
		},
	}
	decoy := map[string]any{"place_id": "prov-ignored"}
	places := &fakePlaces{resp: []map[string]any{full, decoy}}
	svc := app.NewEnrichmentService(places, nil, time.Minute, time.Second)

	ed := svc.Enrich(context.Background(), "Shoreline Suites", "")
	if ed == nil {
		t.Fatal("nil enrichment")
	}
	if ed.ExternalID == nil || *ed.ExternalID != "prov-9" {
		t.Fatalf("externalId = %v", ed.ExternalID)
	}
	if ed.Address == nil || *ed.Address != "99 Shore Drive" {
		t.Fatalf("address = %v", ed.Address)
	}
	if ed.Rating == nil || *ed.Rating != 4.2 || ed.ReviewCount != 845 {
		t.Fatalf("rating = %v, reviewCount = %d", ed.Rating, ed.ReviewCount)
	}
	if ed.PriceLevel == nil || *ed.PriceLevel != 3 {
		t.Fatalf("priceLevel = %v", ed.PriceLevel)
	}

	// baseline pair first, then type tags, then keyword hits in table order
	wantAmenities := []string{
		"Free WiFi", "Parking", "Spa", "Restaurant",
		"Swimming Pool", "Fitness Center", "Breakfast", "Beach Access",
	}
	if !reflect.DeepEqual(ed.Amenities, wantAmenities) {
		t.Fatalf("amenities = %v", ed.Amenities)
	}

	if len(ed.Photos) != 5 || ed.Photos[0] != "p1" || ed.Photos[4] != "p5" {
		t.Fatalf("photos = %v", ed.Photos)
	}
	if len(ed.Reviews) != 3 || ed.Reviews[0] != "Great gym and friendly staff." {
		t.Fatalf("reviews = %v", ed.Reviews)
	}
}

func TestEnrich_NoSignalNoAmenities(t *testing.T) {
	bare := map[string]any{"place_id": "prov-2", "rating": 3.9}
	places := &fakePlaces{resp: []map[string]any{bare}}
	svc := app.NewEnrichmentService(places, nil, time.Minute, time.Second)

	ed := svc.Enrich(context.Background(), "Quiet Corner Inn", "")
	if ed == nil {
		t.Fatal("nil enrichment")
	}
	if len(ed.Amenities) != 0 {
		t.Fatalf("amenities = %v, want none without any signal", ed.Amenities)
	}
}
