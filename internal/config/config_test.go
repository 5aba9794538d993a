package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.FrontendURL != "*" {
		t.Errorf("frontend url = %q, want *", cfg.FrontendURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("DB_PATH", "/tmp/other.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("token ttl = %v, want 2h", cfg.TokenTTL)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("db path = %q, want /tmp/other.db", cfg.DBPath)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Error("expected error for bad PORT")
	}

	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error for missing JWT_SECRET")
	}
}
