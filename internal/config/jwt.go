package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds configuration for bearer token validation. Tokens are issued by an
// external identity service and signed with a shared HS256 secret.
type JWTConfig struct {
	Secret        string
	Issuer        string // optional; when set the iss claim must match
	LeewaySeconds int
}

// NewJWTConfig creates a JWT configuration from environment variables.
// It reads JWT_SECRET (required), JWT_ISSUER (optional) and JWT_LEEWAY_SECONDS (default: 30).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	leewayStr := os.Getenv("JWT_LEEWAY_SECONDS")
	if leewayStr == "" {
		leewayStr = "30"
	}

	leeway, err := strconv.Atoi(leewayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_LEEWAY_SECONDS: %v", err)
	}

	config := &JWTConfig{
		Secret:        secret,
		Issuer:        os.Getenv("JWT_ISSUER"),
		LeewaySeconds: leeway,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.LeewaySeconds < 0 {
		return fmt.Errorf("JWT_LEEWAY_SECONDS must be non-negative, got: %d", c.LeewaySeconds)
	}
	return nil
}
