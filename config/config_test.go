package config

import (
	"os"
	"testing"
	"time"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadConfigFromEnvOnly(t *testing.T) {
	// No .env file in the working directory; everything comes from the
	// environment.
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_EXPIRY", "1h")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("env-only config should load when no .env exists, got: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.App.Port)
	}
	if cfg.Session.Secret != "test-secret" {
		t.Errorf("expected session secret from env, got %q", cfg.Session.Secret)
	}
	if cfg.Session.Expiry != time.Hour {
		t.Errorf("expected 1h session expiry, got %v", cfg.Session.Expiry)
	}
	if cfg.App.ClientURL != "http://localhost:5173" {
		t.Errorf("expected default client url, got %q", cfg.App.ClientURL)
	}
}

func TestLoadConfigDefaultSessionExpiry(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SESSION_EXPIRY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Session.Expiry != 24*time.Hour {
		t.Errorf("expected 24h default expiry, got %v", cfg.Session.Expiry)
	}
}
