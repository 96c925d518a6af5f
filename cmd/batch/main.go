// Command batch resolves a JSON file of raw hotel records against the
// canonical dataset with bounded concurrency, printing one JSON result per
// line. Concurrent records with the same enrichment query share a single
// outbound provider call.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_resolver/internal/adapters/observability"
	"hotel_resolver/internal/adapters/places"
	redisad "hotel_resolver/internal/adapters/redis"
	"hotel_resolver/internal/app"
	"hotel_resolver/internal/domain"
	"hotel_resolver/internal/match"
	"hotel_resolver/internal/shared"
	"hotel_resolver/internal/storage/dataset"
)

func main() {
	inPath := flag.String("in", "", "path to a JSON array of raw hotel records")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if *inPath == "" {
		log.Fatal().Msg("-in is required")
	}

	records, err := dataset.LoadFile(cfg.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Msg("canonical dataset load failed")
	}
	idx := match.NewIndex(records)

	var enricher domain.Enricher
	if cfg.PlacesKey != "" {
		client, err := places.New(cfg.PlacesBase, cfg.PlacesKey, cfg.PlacesRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize places client")
		}
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		enricher = app.NewEnrichmentService(client, cache, cfg.CacheTTL, cfg.EnrichTimeout)
	}
	resolver := app.NewResolver(idx, enricher, cfg.DefaultRegion)

	inputs, err := readInputs(*inPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inPath).Msg("input read failed")
	}
	log.Info().Int("inputs", len(inputs)).Int("workers", cfg.Workers).Msg("batch resolve starting")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	results := make([]domain.VerificationResult, len(inputs))

	for i, raw := range inputs {
		i, raw := i, raw

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			res := resolver.Resolve(ctx, raw)
			results[i] = res
			if res.Verified {
				log.Info().Int("record", i).Str("method", string(res.Method)).
					Float64("score", res.MatchScore).Msg("resolved")
			} else {
				log.Warn().Int("record", i).Str("suggestion", res.Diagnostic.Suggestion).Msg("unresolved")
			}
		}()
	}

	wg.Wait()

	enc := json.NewEncoder(os.Stdout)
	for _, res := range results {
		_ = enc.Encode(res)
	}
	log.Info().Msg("batch resolve completed")
}

func readInputs(path string) ([]map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs []map[string]any
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
