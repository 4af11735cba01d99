// README: Config loader with env defaults for HTTP, DB, Redis, and dialogue settings.
package config

import (
	"os"
	"strconv"
)

type DialogueConfig struct {
	// Goal selects which slot set counts as "complete": "full_trip"
	// requires destination, dates and budget; "destination_only" just
	// the destination (hotel-first flows).
	Goal          string
	DefaultOrigin string
	// SearchTimeoutSeconds bounds every external collaborator call.
	SearchTimeoutSeconds int
	HistoryLimit         int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; when empty the turn audit log is disabled.
		DSN string
	}
	Redis struct {
		// Addr is optional; when empty search caches stay in memory.
		Addr string
	}
	Dialogue DialogueConfig
	AI       struct {
		GeminiKey string
	}
	Weather struct {
		APIKey string
	}
	Maps struct {
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRAVELGUIDE_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("TRAVELGUIDE_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("TRAVELGUIDE_REDIS_ADDR", "")
	cfg.Dialogue.Goal = envOrDefault("TRAVELGUIDE_GOAL", "full_trip")
	cfg.Dialogue.DefaultOrigin = envOrDefault("TRAVELGUIDE_DEFAULT_ORIGIN", "BER")
	cfg.Dialogue.SearchTimeoutSeconds = envOrDefaultInt("TRAVELGUIDE_SEARCH_TIMEOUT", 5)
	cfg.Dialogue.HistoryLimit = envOrDefaultInt("TRAVELGUIDE_HISTORY_LIMIT", 50)
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.Weather.APIKey = envOrDefault("OPENWEATHER_API_KEY", "")
	cfg.Maps.APIKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
