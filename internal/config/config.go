package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration read from the environment.
// It is loaded once in main and passed explicitly into every
// constructor that needs a piece of it.
type Config struct {
	HTTPPort      string
	DatabaseURL   string
	DBPoolSize    int
	RedisURL      string
	RedisPoolSize int
	CacheTTL      time.Duration
	KafkaBrokers  []string
	KafkaTopic    string
	JWTSecret     string
	TokenTTL      time.Duration

	// OpenRouter settings for the chatbot fallback responder.
	OpenRouterKey   string
	OpenRouterModel string
	OpenRouterURL   string
	AppURL          string
	AITimeout       time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for everything except DATABASE_URL and JWT_SECRET.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "5001"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBPoolSize:    getIntEnv("DB_POOL_SIZE", 25),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPoolSize: getIntEnv("REDIS_POOL_SIZE", 50),
		CacheTTL:      time.Duration(getIntEnv("CACHE_TTL_SEC", 300)) * time.Second,
		KafkaBrokers:  getSliceEnv("KAFKA_BROKERS", ""),
		KafkaTopic:    getEnv("KAFKA_ACTIVITY_TOPIC", "dotdo-activity"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      time.Duration(getIntEnv("TOKEN_TTL_HOURS", 30*24)) * time.Hour,

		OpenRouterKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel: getEnv("OPENROUTER_MODEL", "mistralai/mistral-7b-instruct"),
		OpenRouterURL:   getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		AppURL:          getEnv("APP_URL", "http://localhost:5001"),
		AITimeout:       time.Duration(getIntEnv("AI_TIMEOUT_SEC", 30)) * time.Second,
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getSliceEnv(key, defaultVal string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = defaultVal
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
