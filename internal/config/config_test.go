package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != "sqlite" || cfg.DBDSN != "packcatalog.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Fatalf("session ttl = %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.AdminPassword != "password123" {
		t.Fatalf("admin password default = %q", cfg.Auth.AdminPassword)
	}
	if cfg.WhatsApp.Number != "919876543210" {
		t.Fatalf("whatsapp number default = %q", cfg.WhatsApp.Number)
	}
	if cfg.RateMax != 120 || cfg.RateWindow != time.Minute {
		t.Fatalf("rate limit defaults = %d/%v", cfg.RateMax, cfg.RateWindow)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis should be disabled by default, got %q", cfg.Redis.Addr)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":        "9090",
		"DB_DRIVER":   "postgres",
		"DB_DSN":      "postgres://localhost/catalog",
		"SESSION_TTL": "2h",
		"REDIS_ADDR":  "localhost:6379",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBDriver != "postgres" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Auth.SessionTTL != 2*time.Hour {
		t.Fatalf("session ttl = %v", cfg.Auth.SessionTTL)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr = %q", cfg.Redis.Addr)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"DB_DRIVER": "mysql"}))
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
