package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Fatalf("token ttl = %v", cfg.Auth.TokenTTL)
	}
	if !cfg.Seed.Demo {
		t.Fatal("demo seed should default on")
	}
	if cfg.RateLimit.RPS != 50.0 || cfg.RateLimit.Burst != 100 {
		t.Fatalf("rate limit = %+v", cfg.RateLimit)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  addr: \":9090\"\nauth:\n  tokenTTL: 1h\nseed:\n  demo: false\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("token ttl = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Seed.Demo {
		t.Fatal("demo seed should be off")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  addr: \":9090\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REQDIG_ADDR", ":7000")
	t.Setenv("REQDIG_PG_DSN", "postgres://app@localhost/reqdig")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Fatalf("addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.Postgres.DSN != "postgres://app@localhost/reqdig" {
		t.Fatalf("dsn = %q", cfg.Postgres.DSN)
	}
}
