package app

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"hotel_resolver/internal/adapters/observability"
	"hotel_resolver/internal/domain"
	"hotel_resolver/internal/match"
)

// EnrichmentService calls the external place-data provider, with a redis
// cache in front and singleflight coalescing so that at most one outbound
// request per normalized query is ever in flight. Instances own their
// coalescing state; tests can build isolated ones.
type EnrichmentService struct {
	places  domain.PlacesClient
	cache   domain.Cache
	group   singleflight.Group
	ttl     time.Duration
	timeout time.Duration
}

func NewEnrichmentService(places domain.PlacesClient, cache domain.Cache, ttl, timeout time.Duration) *EnrichmentService {
	return &EnrichmentService{places: places, cache: cache, ttl: ttl, timeout: timeout}
}

// Enrich is best-effort: any failure (network, timeout, empty provider
// response) yields nil without surfacing an error. A successful local match
// stays verified even when this returns nil.
func (s *EnrichmentService) Enrich(ctx context.Context, name, locationHint string) *domain.EnrichmentData {
	if s == nil || s.places == nil || strings.TrimSpace(name) == "" {
		return nil
	}

	query := buildQuery(name, locationHint)
	key := "enrich:" + match.Normalize(query)

	if s.cache != nil {
		var cached domain.EnrichmentData
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return &cached
		}
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		cctx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			cctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		candidates, err := s.places.SearchText(cctx, query)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return nil, domain.ErrNotFound
		}

		// Only the first (best-ranked) candidate is used.
		ed := mapCandidate(candidates[0])
		if s.cache != nil {
			_ = s.cache.Set(ctx, key, ed, int(s.ttl.Seconds()))
		}
		return ed, nil
	})
	if shared {
		observability.ObserveCoalesced()
	}
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("enrichment unavailable")
		return nil
	}

	ed := v.(domain.EnrichmentData)
	return &ed
}

// buildQuery appends the location hint unless the name already carries it.
func buildQuery(name, locationHint string) string {
	name = strings.TrimSpace(name)
	hint := strings.TrimSpace(locationHint)
	if hint == "" || strings.Contains(strings.ToLower(name), strings.ToLower(hint)) {
		return name
	}
	return name + " " + hint
}
