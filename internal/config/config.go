package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Workers         int
	UserAgent       string
	FetchTimeout    time.Duration
	BaseURL         string
	DefaultCoin     string
	DefaultProvider string
	LogLevel        string
	LogFormat       string
	TracingEnabled  bool
	OTLPEndpoint    string
}

// Load reads the configuration from the environment. Values in a .env file
// in the working directory are used when the variable is not already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		Workers:         getEnvInt("WORKERS", 5),
		UserAgent:       getEnv("USER_AGENT", ""),
		FetchTimeout:    getEnvDuration("FETCH_TIMEOUT", 0),
		BaseURL:         getEnv("COINMARKETCAP_BASE_URL", ""),
		DefaultCoin:     getEnv("DEFAULT_COIN", "bitcoin"),
		DefaultProvider: getEnv("DEFAULT_PROVIDER", "CoinMarketCap"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		TracingEnabled:  strings.EqualFold(getEnv("TRACING_ENABLED", "false"), "true"),
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
