package domain

// CanonicalRecord is a trusted reference entry. The canonical store owns
// these exclusively; they are never mutated after load.
type CanonicalRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScoredRecord pairs a canonical record with a similarity score,
// as returned by name search.
type ScoredRecord struct {
	Record CanonicalRecord `json:"record"`
	Score  float64         `json:"score"`
}

type IndexStats struct {
	TotalRecords          int `json:"totalRecords"`
	UniqueNormalizedNames int `json:"uniqueNormalizedNames"`
}
