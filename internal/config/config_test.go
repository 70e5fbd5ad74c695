package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "API_BASE_URL", "API_TIMEOUT", "REDIS_ADDR", "SESSION_TTL", "KAFKA_BROKERS", "ACTIVITY_WORKERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "http://localhost:5001" {
		t.Errorf("expected default api base url, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 0 {
		t.Errorf("expected no api timeout, got %v", cfg.APITimeout)
	}
	if cfg.RedisAddr != "" || len(cfg.KafkaBrokers) != 0 {
		t.Errorf("expected redis and kafka disabled, got %q %v", cfg.RedisAddr, cfg.KafkaBrokers)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("expected 12h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.ActivityWorkers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.ActivityWorkers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local:9000/")
	t.Setenv("API_TIMEOUT", "15")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("ACTIVITY_WORKERS", "nope")

	cfg := Load()
	if cfg.APIBaseURL != "http://api.local:9000" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Errorf("expected 15s, got %v", cfg.APITimeout)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %v", cfg.SessionTTL)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Errorf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if cfg.ActivityWorkers != 2 {
		t.Errorf("expected fallback to 2 workers, got %d", cfg.ActivityWorkers)
	}
}
