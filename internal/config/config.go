package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	IdentityURL string
	CatalogURL  string
	SocialURL   string
	LogPath     string
	LogLevel    string
	Seed        int64
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		IdentityURL: getEnv("IDENTITY_URL", "http://localhost:3001"),
		CatalogURL:  getEnv("CATALOG_URL", "http://localhost:3002"),
		SocialURL:   getEnv("SOCIAL_URL", "http://localhost:3003"),
		LogPath:     getEnv("LOG_PATH", "s1_verification_log.json"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Seed:        getEnvInt64("SEED", 0),
	}

	logger.Info().
		Str("identity_url", cfg.IdentityURL).
		Str("catalog_url", cfg.CatalogURL).
		Str("social_url", cfg.SocialURL).
		Str("log_path", cfg.LogPath).
		Str("log_level", cfg.LogLevel).
		Int64("seed", cfg.Seed).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
