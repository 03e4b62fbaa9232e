package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "api")
	t.Setenv("DB_PASSWORD", "secreto")
	t.Setenv("DB_DATABASE", "flota")
	t.Setenv("MASTER_API_KEY", "clave")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("expected default TTL 1h, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Query.StrictFilters {
		t.Error("strict filters must default off")
	}
	if cfg.Webhook.Port != "1701" {
		t.Errorf("expected default webhook port 1701, got %s", cfg.Webhook.Port)
	}
}

func TestDSN(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "3307")

	got := Load().Database.DSN()
	want := "api:secreto@tcp(localhost:3307)/flota?parseTime=true&charset=utf8mb4"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestValidate_ReportsEveryMissingVariable(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_DATABASE", "MASTER_API_KEY", "MASTER_API_KEY_HASH"} {
		t.Setenv(key, "")
	}

	err := Load().Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, name := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_DATABASE", "MASTER_API_KEY"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected %s in %q", name, err.Error())
		}
	}
}

func TestValidate_HashSatisfiesKeyRequirement(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MASTER_API_KEY", "")
	t.Setenv("MASTER_API_KEY_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	if err := Load().Validate(); err != nil {
		t.Fatalf("expected hash to satisfy the key requirement, got %v", err)
	}
}
