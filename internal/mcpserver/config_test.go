package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearRoutediffEnv clears all ROUTEDIFF_* env vars to isolate tests from the ambient environment.
func clearRoutediffEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ROUTEDIFF_CACHE_ENABLED", "ROUTEDIFF_CACHE_MAX_SIZE", "ROUTEDIFF_CACHE_TTL",
		"ROUTEDIFF_MAX_INLINE_SIZE", "ROUTEDIFF_ALLOW_PRIVATE_IPS", "ROUTEDIFF_DETAIL_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearRoutediffEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.Equal(t, 100, c.DetailLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearRoutediffEnv(t)
	t.Setenv("ROUTEDIFF_CACHE_ENABLED", "false")
	t.Setenv("ROUTEDIFF_CACHE_MAX_SIZE", "50")
	t.Setenv("ROUTEDIFF_CACHE_TTL", "2m")
	t.Setenv("ROUTEDIFF_MAX_INLINE_SIZE", "5242880")
	t.Setenv("ROUTEDIFF_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("ROUTEDIFF_DETAIL_LIMIT", "7")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 2*time.Minute, c.CacheTTL)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, 7, c.DetailLimit)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, c *serverConfig)
	}{
		{
			name: "bool", key: "ROUTEDIFF_CACHE_ENABLED", value: "maybe",
			check: func(t *testing.T, c *serverConfig) { assert.True(t, c.CacheEnabled) },
		},
		{
			name: "int", key: "ROUTEDIFF_CACHE_MAX_SIZE", value: "lots",
			check: func(t *testing.T, c *serverConfig) { assert.Equal(t, 10, c.CacheMaxSize) },
		},
		{
			name: "negative int", key: "ROUTEDIFF_DETAIL_LIMIT", value: "-3",
			check: func(t *testing.T, c *serverConfig) { assert.Equal(t, 100, c.DetailLimit) },
		},
		{
			name: "duration", key: "ROUTEDIFF_CACHE_TTL", value: "soon",
			check: func(t *testing.T, c *serverConfig) { assert.Equal(t, 15*time.Minute, c.CacheTTL) },
		},
		{
			name: "zero duration", key: "ROUTEDIFF_CACHE_TTL", value: "0s",
			check: func(t *testing.T, c *serverConfig) { assert.Equal(t, 15*time.Minute, c.CacheTTL) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearRoutediffEnv(t)
			t.Setenv(tt.key, tt.value)
			tt.check(t, loadConfig())
		})
	}
}
