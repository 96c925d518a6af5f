package match_test

import (
	"testing"

	"hotel_resolver/internal/domain"
	"hotel_resolver/internal/match"
)

func TestIndex_LookupAndStats(t *testing.T) {
	idx := match.NewIndex([]domain.CanonicalRecord{
		{ID: "1", Name: "Paradise Beach Resort"},
		{ID: "2", Name: "Paradise Beach Hotel"}, // same key as "1"
		{ID: "3", Name: "Banaue Greenfield Inn"},
	})

	if _, ok := idx.ByID("2"); !ok {
		t.Fatal("ByID miss for 2")
	}
	if _, ok := idx.ByID("99"); ok {
		t.Fatal("ByID hit for unknown id")
	}

	st := idx.Stats()
	if st.TotalRecords != 3 {
		t.Fatalf("TotalRecords = %d", st.TotalRecords)
	}
	// "Paradise Beach Resort" and "Paradise Beach Hotel" collapse to one key
	if st.UniqueNormalizedNames != 2 {
		t.Fatalf("UniqueNormalizedNames = %d", st.UniqueNormalizedNames)
	}
}

func TestIndex_BucketKeepsInsertionOrder(t *testing.T) {
	idx := match.NewIndex([]domain.CanonicalRecord{
		{ID: "10", Name: "Sunset Villa"},
		{ID: "11", Name: "Sunset Villas"}, // same key once the suffix word goes
	})

	bucket := idx.ByNameKey(match.Normalize("Sunset Villa"))
	if len(bucket) != 2 {
		t.Fatalf("bucket size = %d", len(bucket))
	}
	if bucket[0].ID != "10" || bucket[1].ID != "11" {
		t.Fatalf("bucket order = %s, %s", bucket[0].ID, bucket[1].ID)
	}
}

func TestIndex_SweepOrder(t *testing.T) {
	idx := match.NewIndex([]domain.CanonicalRecord{
		{ID: "a", Name: "Alpha Lodge"},
		{ID: "b", Name: "Bravo Lodge"},
	})
	var ids []string
	idx.Sweep(func(rec domain.CanonicalRecord, key, light string) {
		ids = append(ids, rec.ID)
		if key == "" || light == "" {
			t.Errorf("empty precomputed key for %s", rec.ID)
		}
	})
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("sweep order = %v", ids)
	}
}
