package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Upstream.BaseURL != "https://gnews.io/api/v4" {
		t.Errorf("BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Upstream.Timeout)
	}
	if cfg.Cache.MaxSize != 1000 {
		t.Errorf("Cache.MaxSize = %d, want 1000", cfg.Cache.MaxSize)
	}
	if cfg.Cache.TTL != 600*time.Second {
		t.Errorf("Cache.TTL = %v, want 600s", cfg.Cache.TTL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8000", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GNEWS_API_KEY", "secret")
	t.Setenv("GNEWS_BASE_URL", "http://localhost:1234/v4")
	t.Setenv("CACHE_MAX_SIZE", "50")
	t.Setenv("CACHE_TTL", "120")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_PRETTY", "true")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Upstream.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.Upstream.APIKey)
	}
	if cfg.Upstream.BaseURL != "http://localhost:1234/v4" {
		t.Errorf("BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Cache.MaxSize != 50 {
		t.Errorf("Cache.MaxSize = %d, want 50", cfg.Cache.MaxSize)
	}
	// Bare integers are seconds.
	if cfg.Cache.TTL != 2*time.Minute {
		t.Errorf("Cache.TTL = %v, want 2m", cfg.Cache.TTL)
	}
	// Go duration strings work too.
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Upstream.Timeout)
	}
	if !cfg.Log.Pretty {
		t.Error("Log.Pretty = false, want true")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_MAX_SIZE", "lots")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("LOG_PRETTY", "maybe")

	cfg := Load()

	if cfg.Cache.MaxSize != 1000 {
		t.Errorf("Cache.MaxSize = %d, want default 1000", cfg.Cache.MaxSize)
	}
	if cfg.Cache.TTL != 600*time.Second {
		t.Errorf("Cache.TTL = %v, want default 600s", cfg.Cache.TTL)
	}
	if cfg.Log.Pretty {
		t.Error("Log.Pretty = true, want default false")
	}
}
