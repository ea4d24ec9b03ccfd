package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.thecatapi.com/v1/" {
		t.Fatalf("unexpected base url: %s", cfg.APIBaseURL)
	}
	if cfg.ImageCDNURL != "https://cdn2.thecatapi.com/images/" {
		t.Fatalf("unexpected cdn url: %s", cfg.ImageCDNURL)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected empty default api key, got %q", cfg.APIKey)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("unexpected http timeout: %v", cfg.HTTPTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CAT_API_BASE_URL", "http://localhost:9090/v1/")
	t.Setenv("CAT_API_KEY", "live_secret")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:9090/v1/" {
		t.Fatalf("env override not applied: %s", cfg.APIBaseURL)
	}
	if cfg.APIKey != "live_secret" {
		t.Fatalf("env override not applied: %s", cfg.APIKey)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("env override not applied: %v", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive timeout")
	}
}
