package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dotdo?sslmode=disable")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTPPort != "5001" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.DBPoolSize != 25 {
		t.Errorf("DBPoolSize = %d", cfg.DBPoolSize)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.TokenTTL != 30*24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("KafkaBrokers = %v, want empty", cfg.KafkaBrokers)
	}
	if cfg.OpenRouterModel != "mistralai/mistral-7b-instruct" {
		t.Errorf("OpenRouterModel = %q", cfg.OpenRouterModel)
	}
	if cfg.AITimeout != 30*time.Second {
		t.Errorf("AITimeout = %v", cfg.AITimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_POOL_SIZE", "5")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("TOKEN_TTL_HOURS", "1")
	t.Setenv("OPENROUTER_MODEL", "some/other-model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.DBPoolSize != 5 {
		t.Errorf("DBPoolSize = %d", cfg.DBPoolSize)
	}
	want := []string{"broker-1:9092", "broker-2:9092"}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != want[0] || cfg.KafkaBrokers[1] != want[1] {
		t.Errorf("KafkaBrokers = %v, want %v", cfg.KafkaBrokers, want)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.OpenRouterModel != "some/other-model" {
		t.Errorf("OpenRouterModel = %q", cfg.OpenRouterModel)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/dotdo")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when JWT_SECRET is missing")
	}
}

func TestGetIntEnv_Malformed(t *testing.T) {
	t.Setenv("DB_POOL_SIZE", "lots")
	if got := getIntEnv("DB_POOL_SIZE", 25); got != 25 {
		t.Errorf("getIntEnv = %d, want default 25", got)
	}
}
