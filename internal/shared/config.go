package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// Canonical dataset: MySQL DSN wins when set, else the bundled file.
	DatasetPath string
	MySQLDSN    string

	RedisAddr string
	RedisDB   int
	RedisPass string

	PlacesBase    string
	PlacesKey     string
	PlacesRPS     int
	EnrichTimeout time.Duration
	CacheTTL      time.Duration

	// Default location hint for enrichment queries when the input record
	// carries no city/location field.
	DefaultRegion string

	Workers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		DatasetPath:   env("CANONICAL_DATASET_PATH", "data/hotels.json"),
		MySQLDSN:      env("CANONICAL_MYSQL_DSN", ""),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		PlacesBase:    env("PLACES_BASE_URL", "https://places-api.example.com/v1"),
		PlacesKey:     env("PLACES_API_KEY", ""),
		PlacesRPS:     atoi("PLACES_RPS", 5),
		EnrichTimeout: time.Duration(atoi("ENRICH_TIMEOUT_SECONDS", 10)) * time.Second,
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		DefaultRegion: env("DEFAULT_REGION", ""),
		Workers:       atoi("RESOLVE_WORKERS", 8),
	}
	if c.PlacesKey == "" {
		log.Warn().Msg("PLACES_API_KEY is empty; enrichment disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
