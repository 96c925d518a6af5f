package match

import (
	"hotel_resolver/internal/domain"
)

// Index holds the read-only lookup structures over the canonical dataset.
// Build runs once at startup; after that there is no writer, so concurrent
// readers need no locking.
type Index struct {
	byID   map[string]domain.CanonicalRecord
	byName map[string][]domain.CanonicalRecord
	// entries keeps dataset order with precomputed keys for fuzzy sweeps.
	entries []entry
}

type entry struct {
	rec   domain.CanonicalRecord
	key   string
	light string
}

// NewIndex builds the ID and normalized-name indices. IDs are assumed unique
// upstream (dataset curation); duplicates are not defended against. Name
// buckets keep dataset insertion order, which is the documented tie-break
// for exact-match collisions.
func NewIndex(records []domain.CanonicalRecord) *Index {
	idx := &Index{
		byID:    make(map[string]domain.CanonicalRecord, len(records)),
		byName:  make(map[string][]domain.CanonicalRecord, len(records)),
		entries: make([]entry, 0, len(records)),
	}
	for _, r := range records {
		key := Normalize(r.Name)
		idx.byID[r.ID] = r
		idx.byName[key] = append(idx.byName[key], r)
		idx.entries = append(idx.entries, entry{rec: r, key: key, light: NormalizeLight(r.Name)})
	}
	return idx
}

// ByID returns the record for id, if any.
func (x *Index) ByID(id string) (domain.CanonicalRecord, bool) {
	r, ok := x.byID[id]
	return r, ok
}

// ByNameKey returns the ordered bucket for a normalized key.
func (x *Index) ByNameKey(key string) []domain.CanonicalRecord {
	return x.byName[key]
}

// Sweep calls fn with every record and its precomputed normalized and
// light keys, in dataset order.
func (x *Index) Sweep(fn func(rec domain.CanonicalRecord, key, light string)) {
	for _, e := range x.entries {
		fn(e.rec, e.key, e.light)
	}
}

func (x *Index) Stats() domain.IndexStats {
	return domain.IndexStats{
		TotalRecords:          len(x.entries),
		UniqueNormalizedNames: len(x.byName),
	}
}
