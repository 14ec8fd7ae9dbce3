package http

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

// BackoffConfig configures capped exponential retries for transport failures.
type BackoffConfig struct {
	MaxRetries          int
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64
}

// NewBackoffConfig returns a backoff with the given retry count and sane intervals.
func NewBackoffConfig(maxRetries int) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:          maxRetries,
		InitialInterval:     200 * time.Millisecond,
		MaxInterval:         2 * time.Second,
		Multiplier:          2,
		RandomizationFactor: 0.2,
	}
}

// exponential builds a fresh policy for one request
func (b *BackoffConfig) exponential() *backoff.ExponentialBackOff {
	policy := backoff.NewExponentialBackOff()
	policy.RandomizationFactor = b.RandomizationFactor
	if b.InitialInterval > 0 {
		policy.InitialInterval = b.InitialInterval
	}
	if b.MaxInterval > 0 {
		policy.MaxInterval = b.MaxInterval
	}
	if b.Multiplier >= 1 {
		policy.Multiplier = b.Multiplier
	}
	policy.Reset()
	return policy
}

// maxTries counts the first attempt plus the retries
func (b *BackoffConfig) maxTries() uint {
	if b.MaxRetries <= 0 {
		return 1
	}
	return uint(b.MaxRetries) + 1
}
