package ratelimit

import (
	"time"

	"golang.org/x/time/rate"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string     // Endpoint path pattern (supports prefix matching)
	Method string     // HTTP method (GET, POST, etc.)
	Rate   rate.Limit // Sustained requests per second; rate.Inf means unlimited
	Burst  int        // Burst capacity
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Rate            rate.Limit // Default sustained requests per second per client
	Burst           int        // Default burst per client
	IdleTTL         time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds a configuration with the default per-endpoint tiers.
func NewConfig(enabled bool, rps float64, burst int) *Config {
	return &Config{
		Enabled:         enabled,
		Rate:            rate.Limit(rps),
		Burst:           burst,
		IdleTTL:         time.Hour,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// PDF parsing and full text analysis
		{Path: "/api/analyze_resume", Method: "POST", Rate: rate.Every(2 * time.Second), Burst: 5},
		{Path: "/api/predict", Method: "POST", Rate: 2, Burst: 10},
	}
}
