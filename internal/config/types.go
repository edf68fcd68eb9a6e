package config

import "time"

// Config represents the main configuration structure
type Config struct {
	BaseURL          string       `json:"baseUrl"`
	LogLevel         string       `json:"logLevel"`
	PollInterval     int          `json:"pollInterval"`   // ms - wake interval of the batching loop
	MailboxSize      int          `json:"mailboxSize"`    // pending request queue capacity
	RequestTimeout   int          `json:"requestTimeout"` // ms
	RetryMaxAttempts int          `json:"retryMaxAttempts"`
	Concurrency      int          `json:"concurrency"` // parallel callers spawned per CLI command
	Cache            *CacheConfig `json:"cache,omitempty"`
}

// CacheConfig represents the sequence cache configuration
type CacheConfig struct {
	Enabled bool `json:"enabled"`
	TTL     int  `json:"ttl"`  // seconds
	Size    int  `json:"size"` // number of entries
}

// Default values
const (
	DefaultBaseURL          = "https://rest.ensembl.org"
	DefaultLogLevel         = "info"
	DefaultPollInterval     = 500 // ms - minimum time between post operations
	DefaultMailboxSize      = 500
	DefaultRequestTimeout   = 30000 // ms
	DefaultRetryMaxAttempts = 3
	DefaultConcurrency      = 16
	DefaultCacheTTL         = 300 // s
	DefaultCacheSize        = 1024
)

// GetPollIntervalDuration returns the batching wake interval as time.Duration
func (c *Config) GetPollIntervalDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}

// GetRequestTimeoutDuration returns request timeout as time.Duration
func (c *Config) GetRequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Millisecond
}

// IsCacheEnabled returns true if the cache is configured and enabled
func (c *Config) IsCacheEnabled() bool {
	return c.Cache != nil && c.Cache.Enabled
}

// GetTTLDuration returns cache TTL as time.Duration
func (c *CacheConfig) GetTTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}
