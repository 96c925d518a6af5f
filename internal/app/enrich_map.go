package app

import (
	"strconv"
	"strings"

	"hotel_resolver/internal/domain"
)

// Mapping of one provider candidate (loosely-typed payload, first entry of
// the ranked response) into EnrichmentData.

const (
	maxAmenities = 8
	maxPhotos    = 5
	maxReviews   = 3
)

// typeAmenities maps provider category/type tags to amenity labels.
var typeAmenities = map[string]string{
	"spa":        "Spa",
	"restaurant": "Restaurant",
	"bar":        "Bar",
	"cafe":       "Cafe",
	"gym":        "Fitness Center",
	"night_club": "Bar",
}

// amenityKeywords is the fixed keyword table searched over the editorial
// summary and review texts. Ordered so the derived set is deterministic.
var amenityKeywords = []struct{ keyword, amenity string }{
	{"pool", "Swimming Pool"},
	{"spa", "Spa"},
	{"gym", "Fitness Center"},
	{"fitness", "Fitness Center"},
	{"breakfast", "Breakfast"},
	{"beach", "Beach Access"},
	{"restaurant", "Restaurant"},
	{"bar", "Bar"},
	{"shuttle", "Airport Shuttle"},
	{"air conditioning", "Air Conditioning"},
	{"pet", "Pet Friendly"},
	{"balcony", "Balcony"},
	{"garden", "Garden"},
}

// baselineAmenities are assumed present for any place the provider knows
// about; added first so the top-N cap never drops them.
var baselineAmenities = []string{"Free WiFi", "Parking"}

func mapCandidate(c map[string]any) domain.EnrichmentData {
	ed := domain.EnrichmentData{
		ExternalID: strAt(c, "place_id", "placeId", "id"),
		Address:    strAt(c, "formatted_address", "formattedAddress", "address", "vicinity"),
		Rating:     floatAt(c, "rating", "score"),
		PriceLevel: intAt(c, "price_level", "priceLevel"),
		Website:    strAt(c, "website", "websiteUri", "url"),
		Phone:      strAt(c, "formatted_phone_number", "international_phone_number", "phone", "nationalPhoneNumber"),
	}

	if n := floatAt(c, "user_ratings_total", "userRatingCount", "review_count", "reviews_count"); n != nil {
		ed.ReviewCount = int(*n)
	}

	types := strSliceAt(c, "types", "categories", "tags")
	summary := derefStr(strAt(c, "editorial_summary.overview", "editorialSummary.text", "summary", "description"))
	reviews := reviewTexts(c)
	ed.Amenities = deriveAmenities(types, summary, reviews)

	ed.Photos = photoRefs(c)
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}
	ed.Reviews = reviews

	return ed
}

// deriveAmenities builds a bounded, deduplicated amenity set: the baseline
// pair once any signal exists, then type tags, then keyword hits over the
// editorial and review text.
func deriveAmenities(types []string, summary string, reviews []string) []string {
	text := strings.ToLower(strings.TrimSpace(summary + " " + strings.Join(reviews, " ")))
	if len(types) == 0 && text == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(a string) {
		if !seen[a] && len(out) < maxAmenities {
			seen[a] = true
			out = append(out, a)
		}
	}

	for _, b := range baselineAmenities {
		add(b)
	}
	for _, t := range types {
		if a, ok := typeAmenities[strings.ToLower(t)]; ok {
			add(a)
		}
	}
	for _, e := range amenityKeywords {
		if strings.Contains(text, e.keyword) {
			add(e.amenity)
		}
	}
	return out
}

func reviewTexts(c map[string]any) []string {
	raw, ok := lookupAny(c, "reviews").([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range raw {
		switch t := it.(type) {
		case string:
			if t != "" {
				out = append(out, t)
			}
		case map[string]any:
			for _, p := range []string{"text", "text.text", "snippet", "content"} {
				if s := lookupStr(t, p); s != "" {
					out = append(out, s)
					break
				}
			}
		}
	}
	return out
}

func photoRefs(c map[string]any) []string {
	raw, ok := lookupAny(c, "photos").([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, maxPhotos)
	for _, it := range raw {
		if len(out) == maxPhotos {
			break
		}
		switch t := it.(type) {
		case string:
			if t != "" {
				out = append(out, t)
			}
		case map[string]any:
			for _, p := range []string{"photo_reference", "name", "url", "src"} {
				if s := lookupStr(t, p); s != "" {
					out = append(out, s)
					break
				}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

/********** loosely-typed payload helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// strAt: first non-empty string across several paths, as a pointer.
func strAt(m map[string]any, paths ...string) *string {
	for _, p := range paths {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return &s
		}
	}
	return nil
}

// floatAt: number from several paths (float64/int/string like "8,0").
func floatAt(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func intAt(m map[string]any, paths ...string) *int {
	if f := floatAt(m, paths...); f != nil {
		n := int(*f)
		return &n
	}
	return nil
}

// strSliceAt: accept []any with either strings or {name/url} objects.
func strSliceAt(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					out = append(out, n)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
