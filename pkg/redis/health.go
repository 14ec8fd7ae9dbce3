package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is the result of a Redis ping
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings Redis and reports pool statistics
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &HealthChecker{client: client, timeout: timeout}
}

// HealthCheck pings the server and reports its status
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	if h == nil || h.client == nil {
		return RedisHealthCheck{Status: StatusUnknown, Details: map[string]string{}}
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := h.client.Ping(ctx)
	details := map[string]string{
		"latency_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
	}
	if cfg := h.client.GetConfig(); cfg != nil {
		details["address"] = cfg.Host + ":" + strconv.Itoa(cfg.Port)
	}

	if err != nil {
		details["error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.GetClient().PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return RedisHealthCheck{Status: StatusUp, Details: details}
}
