package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: "../../testdata/petstore-baseline.yaml"}
	result, err := input.resolve()
	require.NoError(t, err)
	assert.NotNil(t, result.Document)
	assert.Equal(t, "3.0.3", result.Version)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.reset()
	content := `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`
	result, err := specInput{Content: content}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
}

func TestSpecInput_ResolveSourceCount(t *testing.T) {
	tests := []struct {
		name  string
		input specInput
	}{
		{"none", specInput{}},
		{"file and content", specInput{File: "foo.yaml", Content: "bar"}},
		{"all three", specInput{File: "foo.yaml", URL: "https://example.com/a.yaml", Content: "bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.resolve()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
		})
	}
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	specCache.reset()
	_, err := specInput{File: "/nonexistent/path.yaml"}.resolve()
	assert.Error(t, err)
}

func TestSpecInput_InlineSizeLimit(t *testing.T) {
	saved := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	t.Cleanup(func() { cfg.MaxInlineSize = saved })

	_, err := specInput{Content: "openapi: 3.0.0\n"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")
}

func TestSpecCache_HitOnSameFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: "../../testdata/petstore-baseline.yaml"}

	result1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	specCache.reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: \"3.0.0\"\npaths: {}\n"), 0o644))

	input := specInput{File: path}
	result1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result1.Version)

	require.NoError(t, os.WriteFile(path, []byte("openapi: \"3.1.0\"\npaths: {}\n"), 0o644))
	// Coarse-grained filesystems may not change mtime between writes.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.Equal(t, "3.1.0", result2.Version)
}

func TestSpecCache_ContentHash(t *testing.T) {
	specCache.reset()
	input := specInput{Content: "openapi: \"3.0.0\"\npaths: {}\n"}

	result1, err := input.resolve()
	require.NoError(t, err)
	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2)
}

func TestSpecCache_Disabled(t *testing.T) {
	specCache.reset()
	saved := cfg.CacheEnabled
	cfg.CacheEnabled = false
	t.Cleanup(func() { cfg.CacheEnabled = saved })

	input := specInput{Content: "openapi: \"3.0.0\"\npaths: {}\n"}
	result1, err := input.resolve()
	require.NoError(t, err)
	result2, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.Equal(t, 0, specCache.size())
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.reset()

	var firstKey string
	for i := range cfg.CacheMaxSize + 1 {
		content := fmt.Sprintf("openapi: \"3.0.0\"\ninfo:\n  title: Spec %d\npaths: {}\n", i)
		if i == 0 {
			firstKey = makeCacheKey(specInput{Content: content})
		}
		_, err := specInput{Content: content}.resolve()
		require.NoError(t, err)
	}

	assert.Equal(t, cfg.CacheMaxSize, specCache.size())
	assert.Nil(t, specCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestMakeCacheKey(t *testing.T) {
	assert.Empty(t, makeCacheKey(specInput{}))
	assert.Empty(t, makeCacheKey(specInput{File: "/nonexistent/path.yaml"}))
	assert.Equal(t, "url:https://example.com/api.yaml", makeCacheKey(specInput{URL: "https://example.com/api.yaml"}))

	a := makeCacheKey(specInput{Content: "a"})
	b := makeCacheKey(specInput{Content: "b"})
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "content:")
}
