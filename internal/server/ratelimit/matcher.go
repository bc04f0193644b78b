package ratelimit

import (
	"strings"

	"golang.org/x/time/rate"
)

// unlimited is returned for endpoints that are never throttled.
var unlimited = EndpointConfig{Rate: rate.Inf}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns nil if no match is found. Paths ending with "/" match by prefix.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		cfg := unlimited
		return &cfg
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
