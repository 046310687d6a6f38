package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hollowforge/itemkit/internal/domain"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string

	// StackPolicy selects quantity comparison semantics for stack
	// matchers ("at_least" or "exact").
	StackPolicy domain.StackPolicy

	// MaterialsPath points at the material catalog definition file.
	// Empty means the built-in defaults are used.
	MaterialsPath string

	PlaceholderCacheSize int
	PlaceholderCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:     getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		StackPolicy:   domain.StackPolicy(getEnv(EnvStackPolicy, string(domain.StackAtLeast))),
		MaterialsPath: getEnv(EnvMaterialsPath, ""),
	}

	size, err := getEnvInt(EnvPlaceholderCacheSize, DefaultPlaceholderCacheSize)
	if err != nil {
		return nil, err
	}
	cfg.PlaceholderCacheSize = size

	ttlMs, err := getEnvInt(EnvPlaceholderCacheTTLMs, DefaultPlaceholderCacheTTLMs)
	if err != nil {
		return nil, err
	}
	cfg.PlaceholderCacheTTL = time.Duration(ttlMs) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values for consistency
func (c *Config) Validate() error {
	if !c.StackPolicy.Valid() {
		return fmt.Errorf("invalid %s value: %q", EnvStackPolicy, c.StackPolicy)
	}
	if c.PlaceholderCacheSize <= 0 {
		return fmt.Errorf("invalid %s value: must be positive", EnvPlaceholderCacheSize)
	}
	if c.PlaceholderCacheTTL <= 0 {
		return fmt.Errorf("invalid %s value: must be positive", EnvPlaceholderCacheTTLMs)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
