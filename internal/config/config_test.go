package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "WORKERS", "FETCH_TIMEOUT", "COINMARKETCAP_BASE_URL", "DEFAULT_COIN", "TRACING_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Workers != 5 {
		t.Errorf("Workers = %d, want 5", cfg.Workers)
	}
	if cfg.FetchTimeout != 0 {
		t.Errorf("FetchTimeout = %s, want 0", cfg.FetchTimeout)
	}
	if cfg.DefaultCoin != "bitcoin" {
		t.Errorf("DefaultCoin = %q, want bitcoin", cfg.DefaultCoin)
	}
	if cfg.TracingEnabled {
		t.Error("tracing should be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WORKERS", "12")
	t.Setenv("FETCH_TIMEOUT", "15s")
	t.Setenv("COINMARKETCAP_BASE_URL", "http://localhost:1234/currencies/")
	t.Setenv("TRACING_ENABLED", "TRUE")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Workers != 12 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("FetchTimeout = %s", cfg.FetchTimeout)
	}
	if cfg.BaseURL != "http://localhost:1234/currencies/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.TracingEnabled {
		t.Error("expected tracing enabled")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKERS", "many")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg := Load()
	if cfg.Workers != 5 {
		t.Errorf("Workers = %d, want fallback 5", cfg.Workers)
	}
	if cfg.FetchTimeout != 0 {
		t.Errorf("FetchTimeout = %s, want fallback 0", cfg.FetchTimeout)
	}
}
