package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// PlacesClient is the outbound port to the external place-data provider.
// SearchText returns ranked place candidates as loosely-typed payloads;
// only the first candidate is consumed.
type PlacesClient interface {
	SearchText(ctx context.Context, query string) ([]map[string]any, error)
}

// Cache is the enrichment cache port.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Enricher augments a resolved record. Best-effort: a nil return means
// enrichment is unavailable and must not affect the match decision.
type Enricher interface {
	Enrich(ctx context.Context, name, locationHint string) *EnrichmentData
}
