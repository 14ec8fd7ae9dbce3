package main

import (
	"testing"

	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

func TestInitPrefetchRequiresCache(t *testing.T) {
	resource.Set("app.prefetch.enabled", true)
	resource.Set("app.prefetch.cron", "*/10 * * * *")
	defer resource.Set("app.prefetch.enabled", false)

	if scheduler := initPrefetch(nil, nil); scheduler != nil {
		scheduler.Stop()
		t.Fatal("prefetch must not be scheduled without a cache")
	}
}

func TestInitPrefetchDisabled(t *testing.T) {
	resource.Set("app.prefetch.enabled", false)

	client, err := redis.NewClient(redis.NewRedisConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = client.Close() }()

	if scheduler := initPrefetch(nil, client); scheduler != nil {
		scheduler.Stop()
		t.Fatal("prefetch must not be scheduled when disabled")
	}
}

func TestInitPrefetchWithCache(t *testing.T) {
	resource.Set("app.prefetch.enabled", true)
	resource.Set("app.prefetch.cron", "*/10 * * * *")
	defer resource.Set("app.prefetch.enabled", false)

	client, err := redis.NewClient(redis.NewRedisConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = client.Close() }()

	scheduler := initPrefetch(nil, client)
	if scheduler == nil {
		t.Fatal("expected a scheduler when prefetch and cache are enabled")
	}
	scheduler.Stop()
}
