package config

// Environment variable names
const (
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvStackPolicy           = "STACK_MATCH_POLICY"
	EnvMaterialsPath         = "MATERIALS_PATH"
	EnvPlaceholderCacheSize  = "PLACEHOLDER_CACHE_SIZE"
	EnvPlaceholderCacheTTLMs = "PLACEHOLDER_CACHE_TTL_MS"
)

// Default values
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"

	DefaultPlaceholderCacheSize = 1024

	// Placeholder results go stale almost immediately on a live
	// server; the cache only smooths over burst lookups within a tick.
	DefaultPlaceholderCacheTTLMs = 50
)
