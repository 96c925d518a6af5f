package domain

// Method identifies which tier of the matching strategy produced a result.
type Method string

const (
	MethodID        Method = "id_match"
	MethodExactName Method = "exact_name_match"
	MethodFuzzyName Method = "fuzzy_name_match"
	MethodFailed    Method = "failed"
)

// VerificationResult is the outcome of one resolution call. Callers branch on
// Verified; a failed resolution is a value, not an error.
type VerificationResult struct {
	Verified   bool             `json:"verified"`
	MatchScore float64          `json:"matchScore"`
	Method     Method           `json:"method"`
	Resolved   *CanonicalRecord `json:"resolved,omitempty"`
	// Merged is the input record with the canonical id/name written last,
	// so they win over any conflicting input fields. The input's own
	// display name is kept under "display_name".
	Merged     map[string]any  `json:"merged,omitempty"`
	Enrichment *EnrichmentData `json:"enrichment,omitempty"`
	Warnings   []string        `json:"warnings,omitempty"`
	Diagnostic *Diagnostic     `json:"diagnostic,omitempty"`
}

// Diagnostic explains a failed resolution.
type Diagnostic struct {
	HasID           bool     `json:"hasId"`
	HasName         bool     `json:"hasName"`
	AvailableFields []string `json:"availableFields"`
	Suggestion      string   `json:"suggestion"`
}

// EnrichmentData is best-effort augmentation from the external place-data
// provider. It is merged into results but never back into the canonical store.
type EnrichmentData struct {
	ExternalID  *string  `json:"externalId,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount int      `json:"reviewCount"`
	Photos      []string `json:"photos,omitempty"`
	Reviews     []string `json:"reviews,omitempty"`
	PriceLevel  *int     `json:"priceLevel,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
}
