package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/finvision/corpledger/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STORE_BACKEND", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StoreBackend != config.BackendRedis {
		t.Fatalf("expected default backend redis, got %s", cfg.StoreBackend)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if !cfg.CloseOnStart {
		t.Fatalf("expected close-on-start to default to true")
	}

	if cfg.CloseInterval != time.Hour {
		t.Fatalf("expected default close interval 1h, got %s", cfg.CloseInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("CLOSE_ON_START", "false")
	t.Setenv("CLOSE_INTERVAL", "15m")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StoreBackend != config.BackendPostgres {
		t.Fatalf("expected postgres backend, got %s", cfg.StoreBackend)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.CloseOnStart || cfg.CloseInterval != 15*time.Minute {
		t.Fatalf("expected close settings override, got onStart=%v interval=%s", cfg.CloseOnStart, cfg.CloseInterval)
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassandra")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	original := os.Getenv("HTTP_READ_TIMEOUT")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")
	t.Cleanup(func() {
		t.Setenv("HTTP_READ_TIMEOUT", original)
	})

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
