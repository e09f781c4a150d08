package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds the MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	// MaxInlineSize caps the size of inline document content in bytes.
	MaxInlineSize int64
	// AllowPrivateIPs disables the SSRF guard on URL inputs.
	AllowPrivateIPs bool

	// DetailLimit is the default number of changed routes returned with
	// their full change list.
	DetailLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from ROUTEDIFF_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:    envBool("ROUTEDIFF_CACHE_ENABLED", true),
		CacheMaxSize:    envInt("ROUTEDIFF_CACHE_MAX_SIZE", 10),
		CacheTTL:        envDuration("ROUTEDIFF_CACHE_TTL", 15*time.Minute),
		MaxInlineSize:   int64(envInt("ROUTEDIFF_MAX_INLINE_SIZE", 10*1024*1024)),
		AllowPrivateIPs: envBool("ROUTEDIFF_ALLOW_PRIVATE_IPS", false),
		DetailLimit:     envInt("ROUTEDIFF_DETAIL_LIMIT", 100),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
