package config

import (
	"fmt"
	"strconv"
	"time"
)

// Traditional search provider names accepted by Config.TraditionalProvider.
const (
	ProviderMock    = "mock"
	ProviderSearXNG = "searxng"
)

// Config holds all application configuration
type Config struct {
	// Exa settings
	ExaAPIKey      string
	ExaBaseURL     string
	RequestTimeout time.Duration

	// Comparison settings
	DefaultMaxResults int

	// Traditional search settings
	TraditionalProvider string
	SearXNGURL          string

	// Server settings
	Port int

	// Feature flags
	Debug bool
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		// Exa defaults
		ExaBaseURL:     "https://api.exa.ai",
		RequestTimeout: 30 * time.Second,

		// Comparison defaults
		DefaultMaxResults: 5,

		// Traditional search defaults
		TraditionalProvider: ProviderMock,
		SearXNGURL:          "http://localhost:9090",

		// Server defaults
		Port: 5000,

		// Feature flags
		Debug: false,
	}
}

// ApplyEnv overlays environment variables onto the configuration. Unset
// variables leave the current value in place.
func (c *Config) ApplyEnv() {
	if v := GetEnv("EXA_API_KEY"); v != "" {
		c.ExaAPIKey = v
	}
	if v := GetEnv("EXA_BASE_URL"); v != "" {
		c.ExaBaseURL = v
	}
	if v := GetEnv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			c.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := GetEnv("DEFAULT_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DefaultMaxResults = n
		}
	}
	if v := GetEnv("TRADITIONAL_PROVIDER"); v != "" {
		c.TraditionalProvider = v
	}
	if v := GetEnv("SEARXNG_URL"); v != "" {
		c.SearXNGURL = v
	}
	if v := GetEnv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := GetEnv("DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ExaBaseURL == "" {
		return fmt.Errorf("exa base URL cannot be empty")
	}
	if c.DefaultMaxResults < 1 || c.DefaultMaxResults > 10 {
		return fmt.Errorf("default max results must be between 1 and 10")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	switch c.TraditionalProvider {
	case ProviderMock:
	case ProviderSearXNG:
		if c.SearXNGURL == "" {
			return fmt.Errorf("searxng URL cannot be empty when the searxng provider is selected")
		}
	default:
		return fmt.Errorf("unknown traditional provider %q", c.TraditionalProvider)
	}
	return nil
}

// ExaConfigured reports whether provider credentials are present.
func (c *Config) ExaConfigured() bool {
	return c.ExaAPIKey != ""
}

// GetEnv is a wrapper around os.Getenv for easier testing
var GetEnv = func(key string) string {
	// Will be replaced with os.Getenv in main
	return ""
}
