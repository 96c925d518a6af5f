//go:build integration || !unit

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	httpserver "hotel_resolver/internal/adapters/http_server"
	"hotel_resolver/internal/adapters/places"
	redisad "hotel_resolver/internal/adapters/redis"
	"hotel_resolver/internal/app"
	"hotel_resolver/internal/domain"
	"hotel_resolver/internal/match"
)

// newStack wires the full in-process stack the way cmd/api does: index,
// places client against a fake provider, redis cache on miniredis, resolver,
// chi server. Returns the app's test server URL.
func newStack(t *testing.T) string {
	t.Helper()

	idx := match.NewIndex([]domain.CanonicalRecord{
		{ID: "42", Name: "Paradise Beach Resort"},
		{ID: "7", Name: "City Center Hotel"},
		{ID: "9", Name: "Banaue Greenfield Inn and Restaurant"},
	})

	// Fake place-data provider: one candidate regardless of query.
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []any{map[string]any{
				"place_id":           "prov-42",
				"formatted_address":  "1 Beach Road, Boracay",
				"rating":             4.6,
				"user_ratings_total": 210,
				"types":              []any{"lodging", "spa"},
			}},
		})
	}))
	t.Cleanup(provider.Close)

	cl, err := places.New(provider.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("places.New: %v", err)
	}

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	enricher := app.NewEnrichmentService(cl, cache, time.Minute, 2*time.Second)
	resolver := app.NewResolver(idx, enricher, "Philippines")

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{R: resolver})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts.URL
}

func postResolve(t *testing.T, base string, body map[string]any) (int, domain.VerificationResult) {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(base+"/v1/resolve", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST /v1/resolve: %v", err)
	}
	defer res.Body.Close()
	var vr domain.VerificationResult
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&vr); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return res.StatusCode, vr
}

func TestHTTP_EndToEnd_Resolve(t *testing.T) {
	base := newStack(t)

	// ID match, enriched through the fake provider.
	code, vr := postResolve(t, base, map[string]any{"hotel_id": "42", "hotel_name": "Paradise Beach"})
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if !vr.Verified || vr.Method != domain.MethodID || vr.Resolved == nil || vr.Resolved.ID != "42" {
		t.Fatalf("unexpected result: %+v", vr)
	}
	if vr.Enrichment == nil || vr.Enrichment.ExternalID == nil || *vr.Enrichment.ExternalID != "prov-42" {
		t.Fatalf("enrichment missing: %+v", vr.Enrichment)
	}
	if vr.Merged["name"] != "Paradise Beach Resort" {
		t.Fatalf("merged name = %v", vr.Merged["name"])
	}

	// Fuzzy name match with advisory warning.
	code, vr = postResolve(t, base, map[string]any{"hotel_name": "City Centre Htel"})
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if !vr.Verified || vr.Method != domain.MethodFuzzyName || vr.Resolved == nil || vr.Resolved.ID != "7" {
		t.Fatalf("unexpected fuzzy result: %+v", vr)
	}
	if len(vr.Warnings) == 0 {
		t.Fatalf("expected advisory warning, got none")
	}

	// No usable fields: failed with diagnostics, still 200.
	code, vr = postResolve(t, base, map[string]any{"foo": "bar"})
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if vr.Verified || vr.Method != domain.MethodFailed || vr.Diagnostic == nil {
		t.Fatalf("unexpected failure result: %+v", vr)
	}
	if vr.Diagnostic.HasID || vr.Diagnostic.HasName {
		t.Fatalf("diagnostic flags: %+v", vr.Diagnostic)
	}

	// Malformed body is the caller's fault.
	res, err := http.Post(base+"/v1/resolve", "application/json", bytes.NewReader([]byte("not json")))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad body status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("bad body content type %q", ct)
	}
}

func TestHTTP_EndToEnd_HotelByID(t *testing.T) {
	base := newStack(t)

	res, err := http.Get(base + "/v1/hotels/7")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	var rec domain.CanonicalRecord
	if err := json.NewDecoder(res.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.ID != "7" || rec.Name != "City Center Hotel" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	// Conditional revalidation.
	req, _ := http.NewRequest("GET", base+"/v1/hotels/7", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("conditional status %d", res2.StatusCode)
	}

	// Unknown id.
	res3, err := http.Get(base + "/v1/hotels/999")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res3.Body.Close()
	if res3.StatusCode != http.StatusNotFound {
		t.Fatalf("404 status %d", res3.StatusCode)
	}
	if ct := res3.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("404 content type %q", ct)
	}
}

func TestHTTP_EndToEnd_SearchStatsHealth(t *testing.T) {
	base := newStack(t)

	res, err := http.Get(base + "/v1/search?q=paradise+beach")
	if err != nil {
		t.Fatalf("GET search: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("search status %d", res.StatusCode)
	}
	var sr struct {
		Query   string               `json:"query"`
		Results []domain.ScoredRecord `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(sr.Results) == 0 || sr.Results[0].Record.ID != "42" {
		t.Fatalf("unexpected search results: %+v", sr.Results)
	}

	res2, err := http.Get(base + "/v1/search")
	if err != nil {
		t.Fatalf("GET search no q: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing q status %d", res2.StatusCode)
	}

	res3, err := http.Get(base + "/v1/stats")
	if err != nil {
		t.Fatalf("GET stats: %v", err)
	}
	defer res3.Body.Close()
	var st domain.IndexStats
	if err := json.NewDecoder(res3.Body).Decode(&st); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if st.TotalRecords != 3 {
		t.Fatalf("stats: %+v", st)
	}

	res4, err := http.Get(base + "/healthz")
	if err != nil {
		t.Fatalf("GET healthz: %v", err)
	}
	defer res4.Body.Close()
	if res4.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", res4.StatusCode)
	}
}
