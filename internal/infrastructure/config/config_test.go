package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionBackend != "memory" {
		t.Fatalf("default session backend = %q, want memory", cfg.SessionBackend)
	}
	if cfg.SessionKey != "apollo_auth" {
		t.Fatalf("default session key = %q", cfg.SessionKey)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("default redis addr = %q", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SEED_FILE", "/etc/portal/seed.yaml")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionBackend != "redis" || cfg.Redis.Addr != "redis.internal:6380" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.SeedFile != "/etc/portal/seed.yaml" {
		t.Fatalf("seed file = %q", cfg.SeedFile)
	}
}
