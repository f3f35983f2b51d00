package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("APPLICATION_STRICT_TRANSITIONS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.AccessTTL != 24*time.Hour {
		t.Errorf("access ttl = %v, want 24h", cfg.AccessTTL)
	}
	if cfg.StrictStatusTransitions {
		t.Error("strict transitions should default to false")
	}
}

func TestLoadOverridesAndBadValues(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("JWT_ACCESS_TTL", "90m")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("APPLICATION_STRICT_TRANSITIONS", "true")

	cfg := Load()
	if cfg.StorageDriver != "memory" {
		t.Errorf("storage driver = %q, want memory", cfg.StorageDriver)
	}
	if cfg.AccessTTL != 90*time.Minute {
		t.Errorf("access ttl = %v, want 90m", cfg.AccessTTL)
	}
	if cfg.RedisDB != 0 {
		t.Errorf("redis db = %d, want fallback 0", cfg.RedisDB)
	}
	if !cfg.StrictStatusTransitions {
		t.Error("strict transitions should be enabled")
	}
}

func TestCSVHelpers(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.test, ,http://b.test ", ElasticsearchAddrs: ""}
	origins := cfg.CORSOrigins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", origins)
	}
	if addrs := cfg.ESAddrs(); len(addrs) != 0 {
		t.Errorf("expected no es addrs, got %v", addrs)
	}
	cfg = &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "d", DBSSLMode: "disable"}
	if got := cfg.PostgresDSN(); got != "postgres://u:p@h:1/d?sslmode=disable" {
		t.Errorf("dsn = %q", got)
	}
}
