package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// DefaultConfig returns the limiter configuration with built-in
// defaults, ignoring the environment.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// LoadConfig builds the limiter configuration from environment
// variables, falling back to the built-in endpoint budgets.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint budgets. Scoring
// calls dominate CPU, so they sit in the strict tier; session edits are
// debounced client-side and get a moderate budget.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: scoring (expensive)
		{Path: "/score", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/sessions/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Tier 2: session writes
		{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/sessions/", Method: "PUT", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/sessions/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 3: reads fall through to the default limit.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
