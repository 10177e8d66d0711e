package config

import (
	"os"
	"testing"
	"time"
)

// unset clears variables for the test while keeping t.Setenv's
// restore-on-cleanup behavior.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	unset(t, "ACCESS_TOKEN_SECRET", "PORT", "ACCESS_TOKEN_TTL", "SESSION_COOKIE_MAX_AGE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr() != ":4000" {
		t.Fatalf("expected default addr :4000, got %q", cfg.Addr())
	}
	if cfg.AccessTokenTTL != 10*time.Second {
		t.Fatalf("expected default token ttl 10s, got %v", cfg.AccessTokenTTL)
	}
	if cfg.CookieMaxAge != 7200 {
		t.Fatalf("expected default cookie max-age 7200, got %d", cfg.CookieMaxAge)
	}
	if !cfg.Development() {
		t.Fatalf("expected development environment")
	}
}

func TestLoadSecretFallbackInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	unset(t, "ACCESS_TOKEN_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.AccessTokenSecret != "secretTesting" {
		t.Fatalf("expected development fallback secret, got %q", cfg.AccessTokenSecret)
	}
}

func TestLoadSecretRequiredOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	unset(t, "ACCESS_TOKEN_SECRET")

	if _, err := Load(); err == nil {
		t.Fatalf("expected load to fail without a secret in production")
	}

	t.Setenv("ACCESS_TOKEN_SECRET", "s3cr3t")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed with secret set: %v", err)
	}
	if cfg.AccessTokenSecret != "s3cr3t" {
		t.Fatalf("unexpected secret %q", cfg.AccessTokenSecret)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "5000")
	t.Setenv("ACCESS_TOKEN_TTL", "30s")
	t.Setenv("SESSION_COOKIE_MAX_AGE", "60")
	t.Setenv("AUTH_VERIFY_CREDENTIALS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr() != ":5000" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.AccessTokenTTL != 30*time.Second {
		t.Fatalf("unexpected ttl %v", cfg.AccessTokenTTL)
	}
	if cfg.CookieMaxAge != 60 {
		t.Fatalf("unexpected max-age %d", cfg.CookieMaxAge)
	}
	if !cfg.VerifyCredentials {
		t.Fatalf("expected credential verification enabled")
	}
}
