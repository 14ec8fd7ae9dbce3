package redis

import (
	"fmt"
	"time"
)

// Config represents Redis configuration options
type Config struct {
	// Host is the Redis server host
	Host string
	// Port is the Redis server port
	Port int
	// Password is the Redis server password
	Password string
	// Database is the Redis database number
	Database int
	// MinIdleConns is the minimum number of idle (unused but open) connections
	MinIdleConns int
	// MaxActive is the maximum number of active connections that can be established
	MaxActive int
	// MaxRetries is the maximum number of retries for failed commands
	MaxRetries int
	// DialTimeout is the timeout for establishing connections
	DialTimeout time.Duration
	// ReadTimeout is the timeout for socket reads
	ReadTimeout time.Duration
	// WriteTimeout is the timeout for socket writes
	WriteTimeout time.Duration
	// CacheTTLs is a map of cache names to their TTL durations
	CacheTTLs map[string]time.Duration
	// DefaultCacheTTL is the default TTL for caches when not specified in CacheTTLs
	DefaultCacheTTL time.Duration
}

// NewRedisConfig creates a new Redis configuration with default values
func NewRedisConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		Database:        0,
		MinIdleConns:    2,
		MaxActive:       50,
		MaxRetries:      1,
		DialTimeout:     2 * time.Second,
		ReadTimeout:     1 * time.Second,
		WriteTimeout:    1 * time.Second,
		CacheTTLs:       make(map[string]time.Duration),
		DefaultCacheTTL: 10 * time.Minute,
	}
}

// WithHost sets the Redis server host
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort sets the Redis server port
func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

// WithPassword sets the Redis server password
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase sets the Redis database number
func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

// WithDialTimeout sets the timeout for establishing connections
func (c *Config) WithDialTimeout(dialTimeout time.Duration) *Config {
	c.DialTimeout = dialTimeout
	return c
}

// WithReadTimeout sets the timeout for socket reads and writes
func (c *Config) WithReadTimeout(readTimeout time.Duration) *Config {
	c.ReadTimeout = readTimeout
	c.WriteTimeout = readTimeout
	return c
}

// WithCacheTTL sets the TTL for a specific cache name
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

// WithDefaultCacheTTL sets the default TTL for caches
func (c *Config) WithDefaultCacheTTL(defaultTTL time.Duration) *Config {
	c.DefaultCacheTTL = defaultTTL
	return c
}

// DefaultConfig returns a default Redis configuration
func DefaultConfig() *Config {
	return NewRedisConfig()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1 and 65535", c.Port)
	}
	if c.Database < 0 || c.Database > 15 {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}
	if c.MinIdleConns < 0 || c.MaxActive < 0 || c.MaxRetries < 0 {
		return fmt.Errorf("pool sizes and retries must be non-negative")
	}
	if c.DialTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return fmt.Errorf("timeouts must be non-negative")
	}
	for name, ttl := range c.CacheTTLs {
		if ttl < 0 {
			return fmt.Errorf("invalid TTL for cache %s: %v", name, ttl)
		}
	}
	if c.DefaultCacheTTL < 0 {
		return fmt.Errorf("invalid default cache TTL: %v", c.DefaultCacheTTL)
	}
	return nil
}
