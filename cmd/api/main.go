package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "hotel_resolver/internal/adapters/http_server"
	"hotel_resolver/internal/adapters/observability"
	"hotel_resolver/internal/adapters/places"
	redisad "hotel_resolver/internal/adapters/redis"
	"hotel_resolver/internal/app"
	"hotel_resolver/internal/domain"
	"hotel_resolver/internal/match"
	"hotel_resolver/internal/shared"
	"hotel_resolver/internal/storage/dataset"
	mysqlrepo "hotel_resolver/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// canonical dataset: MySQL when a DSN is configured, bundled file otherwise
	records, err := loadDataset(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("canonical dataset load failed")
	}
	idx := match.NewIndex(records)
	st := idx.Stats()
	log.Info().
		Int("records", st.TotalRecords).
		Int("unique_names", st.UniqueNormalizedNames).
		Msg("canonical index built")

	// enrichment: best-effort, disabled without an API key
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

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{R: resolver})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func loadDataset(cfg shared.Config) ([]domain.CanonicalRecord, error) {
	if cfg.MySQLDSN == "" {
		return dataset.LoadFile(cfg.DatasetPath)
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return mysqlrepo.New(db).ListAll(context.Background())
}
