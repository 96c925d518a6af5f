package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"hotel_resolver/internal/adapters/observability"
	"hotel_resolver/internal/domain"
	"hotel_resolver/internal/match"
)

const (
	// FuzzyThreshold is strict: candidates must score above it, not at it.
	FuzzyThreshold = 0.65
	// LowConfidence marks fuzzy matches that should be manually verified.
	LowConfidence = 0.75
	// AdvisoryCutoff: any non-exact score below this gets a warning naming
	// the matched canonical record.
	AdvisoryCutoff = 0.95

	searchLimit = 5
)

// Resolver orchestrates the multi-tier matching strategy:
// ID -> exact name -> fuzzy name -> diagnosed failure.
type Resolver struct {
	idx         *match.Index
	scorer      match.Scorer
	enricher    domain.Enricher
	defaultHint string
}

// NewResolver wires the resolver over a built index. enricher may be nil,
// in which case results simply carry no enrichment.
func NewResolver(idx *match.Index, enricher domain.Enricher, defaultHint string) *Resolver {
	return &Resolver{
		idx:         idx,
		scorer:      match.DefaultScorer,
		enricher:    enricher,
		defaultHint: defaultHint,
	}
}

// Resolve never returns an error: malformed input and reference-data misses
// are first-class Failed results carrying diagnostics.
func (r *Resolver) Resolve(ctx context.Context, raw map[string]any) domain.VerificationResult {
	id, hasID := firstNonEmpty(raw, idAliases)
	name, hasName := firstNonEmpty(raw, nameAliases)

	// Tier 1: ID match wins regardless of what the name would fuzzy-match.
	if hasID {
		if rec, ok := r.idx.ByID(id); ok {
			return r.success(ctx, raw, rec, domain.MethodID, 1.0, name, nil)
		}
	}

	if hasName {
		key := match.Normalize(name)
		light := match.NormalizeLight(name)

		// Tier 2: exact normalized-name match. Bucket order is dataset
		// insertion order; first entry wins (documented tie-break).
		if bucket := r.idx.ByNameKey(key); len(bucket) > 0 {
			return r.success(ctx, raw, bucket[0], domain.MethodExactName, 1.0, name, nil)
		}

		// Tier 3: fuzzy sweep over the full dataset.
		if best, score, ok := r.bestFuzzy(key, light); ok {
			var warnings []string
			if score < LowConfidence {
				warnings = append(warnings, "low-confidence match; recommend manual verification")
			}
			if score < AdvisoryCutoff {
				warnings = append(warnings, fmt.Sprintf(
					"fuzzy-matched canonical record %s (%q) at %.3f", best.ID, best.Name, score))
			}
			return r.success(ctx, raw, best, domain.MethodFuzzyName, score, name, warnings)
		}
	}

	diag := &domain.Diagnostic{
		HasID:           hasID,
		HasName:         hasName,
		AvailableFields: sortedKeys(raw),
	}
	if hasName {
		diag.Suggestion = fmt.Sprintf("no canonical match; try a manual search for %q", name)
	} else if hasID {
		diag.Suggestion = fmt.Sprintf("id %q not in the reference dataset; no name field to fall back on", id)
	} else {
		diag.Suggestion = "missing both id and name fields"
	}

	observability.ObserveResolution(string(domain.MethodFailed), 0)
	return domain.VerificationResult{
		Verified:   false,
		Method:     domain.MethodFailed,
		Diagnostic: diag,
	}
}

// LookupByID returns the canonical record for id, or nil.
func (r *Resolver) LookupByID(id string) *domain.CanonicalRecord {
	if rec, ok := r.idx.ByID(id); ok {
		return &rec
	}
	return nil
}

// SearchByName returns up to 5 candidates scoring above the fuzzy threshold,
// descending; equal scores keep dataset order.
func (r *Resolver) SearchByName(name string) []domain.ScoredRecord {
	key := match.Normalize(name)
	light := match.NormalizeLight(name)
	if key == "" && light == "" {
		return nil
	}
	var out []domain.ScoredRecord
	r.idx.Sweep(func(rec domain.CanonicalRecord, recKey, recLight string) {
		if s := r.pairScore(key, light, recKey, recLight); s > FuzzyThreshold {
			out = append(out, domain.ScoredRecord{Record: rec, Score: s})
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > searchLimit {
		out = out[:searchLimit]
	}
	return out
}

func (r *Resolver) Stats() domain.IndexStats { return r.idx.Stats() }

func (r *Resolver) bestFuzzy(key, light string) (domain.CanonicalRecord, float64, bool) {
	var (
		best  domain.CanonicalRecord
		score float64
		found bool
	)
	r.idx.Sweep(func(rec domain.CanonicalRecord, recKey, recLight string) {
		if s := r.pairScore(key, light, recKey, recLight); s > FuzzyThreshold && s > score {
			best, score, found = rec, s, true
		}
	})
	return best, score, found
}

// pairScore scores on the normalized keys and on the light (case and
// punctuation only) forms, taking the better of the two. Suffix stripping
// is asymmetric when an input misspells a business-type word ("Htel" stays,
// "Hotel" is stripped); the light form keeps such pairs comparable.
func (r *Resolver) pairScore(key, light, recKey, recLight string) float64 {
	s := r.scorer.Score(key, recKey)
	if ls := r.scorer.Score(light, recLight); ls > s {
		s = ls
	}
	return s
}

func (r *Resolver) success(
	ctx context.Context,
	raw map[string]any,
	rec domain.CanonicalRecord,
	method domain.Method,
	score float64,
	displayName string,
	warnings []string,
) domain.VerificationResult {
	res := domain.VerificationResult{
		Verified:   true,
		MatchScore: score,
		Method:     method,
		Resolved:   &rec,
		Merged:     mergedRecord(raw, rec, displayName),
		Warnings:   warnings,
	}

	// Best-effort: enrichment failure must not affect the match decision.
	if r.enricher != nil {
		res.Enrichment = r.enricher.Enrich(ctx, rec.Name, r.locationHint(raw))
	}

	observability.ObserveResolution(string(method), score)
	log.Debug().
		Str("method", string(method)).
		Float64("score", score).
		Str("canonical_id", rec.ID).
		Msg("resolved")
	return res
}

func (r *Resolver) locationHint(raw map[string]any) string {
	if hint, ok := firstNonEmpty(raw, locationAliases); ok {
		return hint
	}
	return r.defaultHint
}

// mergedRecord copies the input and writes the canonical id/name last so
// they win over conflicting input fields (the canonical id must not be
// shadowed by an unrelated external identifier). The input's own display
// name stays available under display_name.
func mergedRecord(raw map[string]any, rec domain.CanonicalRecord, displayName string) map[string]any {
	out := make(map[string]any, len(raw)+3)
	for k, v := range raw {
		out[k] = v
	}
	if displayName != "" {
		out["display_name"] = displayName
	}
	out["id"] = rec.ID
	out["name"] = rec.Name
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
