package redis

import (
	"context"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"defaults", NewRedisConfig(), false},
		{"empty host", NewRedisConfig().WithHost(""), true},
		{"bad port", NewRedisConfig().WithPort(70000), true},
		{"bad database", NewRedisConfig().WithDatabase(16), true},
		{"negative ttl", NewRedisConfig().WithCacheTTL("forecast", -time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	if _, err := NewClient(NewRedisConfig().WithPort(0)); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestCacheKeyAndTTL(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithCacheTTL("forecast", 5*time.Minute))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer func() { _ = client.Close() }()

	forecast := NewCache(client, NewCacheOptions().WithCacheName("forecast"))
	if got := forecast.Key("48.85,2.35"); got != "forecast::48.85,2.35" {
		t.Errorf("unexpected key %q", got)
	}
	if got := forecast.TTL(); got != 5*time.Minute {
		t.Errorf("expected configured TTL, got %v", got)
	}

	geocoding := NewCache(client, NewCacheOptions().WithCacheName("geocoding").WithTTL(time.Hour))
	if got := geocoding.TTL(); got != time.Hour {
		t.Errorf("expected option TTL, got %v", got)
	}
}

func TestCacheFallsBackToDefaultTTL(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithDefaultCacheTTL(3 * time.Minute))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer func() { _ = client.Close() }()

	cache := NewCache(client, NewCacheOptions().WithCacheName("unlisted").WithTTL(0))
	if got := cache.TTL(); got != 3*time.Minute {
		t.Errorf("expected default TTL, got %v", got)
	}
}

func TestHealthCheckDown(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithPort(1).WithDialTimeout(100 * time.Millisecond))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer func() { _ = client.Close() }()

	result := NewHealthChecker(client, 200*time.Millisecond).HealthCheck(context.Background())
	if result.Status != StatusDown {
		t.Fatalf("expected DOWN, got %s", result.Status)
	}
	if result.Details["error"] == "" {
		t.Error("expected error detail")
	}
}
