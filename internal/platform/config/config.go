package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort                 = "8080"
	defaultRatesAPIURL          = "https://api.exchangerate-api.com/v4/latest"
	defaultRatesRefreshInterval = 30 * time.Minute
	defaultRatesFetchTimeout    = 10 * time.Second
	defaultRatesCacheTTL        = 30 * time.Minute
	defaultRateLimit            = "100-M"
	defaultCORSAllowedOrigins   = "http://localhost:3000"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Exchange rate provider
	RatesAPIURL          string
	RatesRefreshInterval time.Duration
	RatesFetchTimeout    time.Duration

	// Shared rate cache; an empty RedisURL disables it
	RedisURL      string
	RatesCacheTTL time.Duration

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATES_API_URL", defaultRatesAPIURL)
	viper.SetDefault("RATES_REFRESH_INTERVAL", defaultRatesRefreshInterval.String())
	viper.SetDefault("RATES_FETCH_TIMEOUT", defaultRatesFetchTimeout.String())
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATES_CACHE_TTL", defaultRatesCacheTTL.String())
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins)

	// Environment variables override the defaults and anything loaded from .env.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")
	if cfg.RatesAPIURL == "" {
		cfg.RatesAPIURL = defaultRatesAPIURL
		log.Printf("Warning: RATES_API_URL not set. Defaulting to %s.\n", cfg.RatesAPIURL)
	}

	cfg.RatesRefreshInterval = durationOrDefault("RATES_REFRESH_INTERVAL", defaultRatesRefreshInterval)
	cfg.RatesFetchTimeout = durationOrDefault("RATES_FETCH_TIMEOUT", defaultRatesFetchTimeout)
	cfg.RatesCacheTTL = durationOrDefault("RATES_CACHE_TTL", defaultRatesCacheTTL)

	cfg.RedisURL = viper.GetString("REDIS_URL")
	if cfg.RedisURL == "" {
		log.Println("Info: REDIS_URL not set. Shared rate cache disabled.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSAllowedOrigins}
		log.Printf("Warning: CORS_ALLOWED_ORIGINS not set. Defaulting to %s.\n", defaultCORSAllowedOrigins)
	}

	return cfg, nil
}

// durationOrDefault parses key as a duration (e.g. "30m"). Invalid or
// non-positive values fall back to def with a warning.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
