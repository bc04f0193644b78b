// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults applied by MergeWithDefaults when neither the config file nor the environment
// sets a value.
const (
	DefaultPort           = 8080
	DefaultRateLimitRPS   = 10.0
	DefaultRateLimitBurst = 20
)

// RateLimitConfig controls per-client request throttling.
type RateLimitConfig struct {
	Enabled bool    `json:"enabled,omitempty"`
	RPS     float64 `json:"rps,omitempty"`   // sustained requests per second
	Burst   int     `json:"burst,omitempty"` // bucket size
}

// Config represents settings that can be loaded from a JSON file and the environment.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port        int      `json:"port,omitempty"`
	DatabaseURL string   `json:"database_url,omitempty"` // PostgreSQL connection URL
	ModelPath   string   `json:"model_path,omitempty"`   // forest model JSON; optional
	WatchModel  bool     `json:"watch_model,omitempty"`  // reload the model when the file changes
	CatalogPath string   `json:"catalog_path,omitempty"` // catalog override JSON; optional
	CORSOrigins []string `json:"cors_origins,omitempty"`
	LogLevel    string   `json:"log_level,omitempty"`
	LogFormat   string   `json:"log_format,omitempty"` // json or pretty

	RateLimit RateLimitConfig `json:"rate_limit"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads PORT, DATABASE_URL, MODEL_PATH, WATCH_MODEL, CATALOG_PATH, CORS_ORIGINS,
// LOG_LEVEL, LOG_FORMAT and the RATE_LIMIT_* variables. Unparseable numbers are reported
// as errors; unset variables leave fields zero.
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ModelPath:   os.Getenv("MODEL_PATH"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		CORSOrigins: ParseOrigins(os.Getenv("CORS_ORIGINS")),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
	}

	var err error
	if cfg.Port, err = envInt("PORT"); err != nil {
		return Config{}, err
	}
	if cfg.WatchModel, err = envBool("WATCH_MODEL"); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED"); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST"); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimit.RPS, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS: %v", err)
		}
	}
	return cfg, nil
}

func envInt(name string) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return n, nil
}

func envBool(name string) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %v", name, err)
	}
	return b, nil
}

// ParseOrigins splits a comma-separated origin list, stripping whitespace and quotes.
// An empty or wildcard value yields ["*"].
func ParseOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || unquote(raw) == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if o := unquote(strings.TrimSpace(part)); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func unquote(s string) string {
	return strings.Trim(s, `"'`)
}

// Validate checks that the configuration has valid values.
// Note: required fields are checked by the commands that need them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("config error: 'rate_limit.rps' must be non-negative")
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("config error: 'rate_limit.burst' must be non-negative")
	}
	if c.LogFormat != "" && c.LogFormat != "json" && c.LogFormat != "pretty" {
		return fmt.Errorf("config error: 'log_format' must be json or pretty")
	}

	if c.ModelPath != "" {
		if _, err := os.Stat(c.ModelPath); os.IsNotExist(err) && !c.WatchModel {
			return fmt.Errorf("config error: model file not found: %s", c.ModelPath)
		}
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults, then from
// built-in defaults for port and rate limits.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ModelPath == "" {
		result.ModelPath = defaults.ModelPath
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if len(result.CORSOrigins) == 0 {
		result.CORSOrigins = defaults.CORSOrigins
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.RateLimit.RPS == 0 {
		result.RateLimit.RPS = defaults.RateLimit.RPS
	}
	if result.RateLimit.RPS == 0 {
		result.RateLimit.RPS = DefaultRateLimitRPS
	}
	if result.RateLimit.Burst == 0 {
		result.RateLimit.Burst = defaults.RateLimit.Burst
	}
	if result.RateLimit.Burst == 0 {
		result.RateLimit.Burst = DefaultRateLimitBurst
	}

	// Bools cannot distinguish unset from false; either source enables them.
	result.WatchModel = result.WatchModel || defaults.WatchModel
	result.RateLimit.Enabled = result.RateLimit.Enabled || defaults.RateLimit.Enabled

	if len(result.CORSOrigins) == 0 {
		result.CORSOrigins = []string{"*"}
	}

	return result
}
