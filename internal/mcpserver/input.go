package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/routediff"
	"github.com/erraggy/routediff/internal/options"
	"github.com/erraggy/routediff/parser"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// specCacheStore is a session-scoped cache of parsed documents.
// File inputs are keyed by (absolutePath, modTime), content inputs by a
// SHA-256 hash and URL inputs by the URL string. Entries expire after
// cfg.CacheTTL and the least recently used entry is evicted at capacity.
type specCacheStore struct {
	lru *expirable.LRU[string, *parser.ParseResult]
}

func newSpecCache(size int) *specCacheStore {
	return &specCacheStore{lru: expirable.NewLRU[string, *parser.ParseResult](size, nil, cfg.CacheTTL)}
}

var specCache = newSpecCache(cfg.CacheMaxSize)

// get returns a cached result or nil.
func (c *specCacheStore) get(key string) *parser.ParseResult {
	if result, ok := c.lru.Get(key); ok {
		return result
	}
	return nil
}

func (c *specCacheStore) put(key string, result *parser.ParseResult) {
	c.lru.Add(key, result)
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.lru.Purge()
}

func (c *specCacheStore) size() int {
	return c.lru.Len()
}

// makeCacheKey creates a cache key for the given spec input, or "" when the
// input cannot be cached.
func makeCacheKey(s specInput) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	case s.URL != "":
		return "url:" + s.URL
	default:
		return ""
	}
}

// resolve parses the document from whichever input was provided, using the
// cache when it is enabled.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if count := options.CountSources(s.File != "", s.URL != "", s.Content != ""); count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set ROUTEDIFF_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
	}
	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts := []parser.Option{parser.WithUserAgent(routediff.UserAgent())}
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		opts = append(opts, parser.WithFilePath(s.URL))
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	case s.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	}

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		specCache.put(key, result)
	}
	return result, nil
}
