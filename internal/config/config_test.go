package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowforge/itemkit/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, domain.StackAtLeast, cfg.StackPolicy)
		assert.Equal(t, DefaultPlaceholderCacheSize, cfg.PlaceholderCacheSize)
		assert.Equal(t, 50*time.Millisecond, cfg.PlaceholderCacheTTL)
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvStackPolicy, "exact")
		t.Setenv(EnvPlaceholderCacheSize, "16")
		t.Setenv(EnvPlaceholderCacheTTLMs, "200")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, domain.StackExact, cfg.StackPolicy)
		assert.Equal(t, 16, cfg.PlaceholderCacheSize)
		assert.Equal(t, 200*time.Millisecond, cfg.PlaceholderCacheTTL)
	})

	t.Run("invalid stack policy", func(t *testing.T) {
		t.Setenv(EnvStackPolicy, "sometimes")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), EnvStackPolicy)
	})

	t.Run("malformed cache size", func(t *testing.T) {
		t.Setenv(EnvPlaceholderCacheSize, "lots")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive cache ttl", func(t *testing.T) {
		t.Setenv(EnvPlaceholderCacheTTLMs, "0")

		_, err := Load()
		assert.Error(t, err)
	})
}
