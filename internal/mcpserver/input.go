package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/erraggy/railsconst/manifest"
)

// manifestInput represents the two ways a batch manifest can be provided.
// At most one of File or Content may be set.
type manifestInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML manifest on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML manifest content"`
}

func (s manifestInput) isEmpty() bool {
	return s.File == "" && s.Content == ""
}

// manifestCache holds decoded manifests for the lifetime of the server.
// File inputs are keyed by (absolutePath, modTime) and content inputs by a
// SHA-256 hash, so an edited file is decoded again.
var manifestCache = newManifestCache(cfg)

func newManifestCache(c *serverConfig) *expirable.LRU[string, *manifest.Manifest] {
	return expirable.NewLRU[string, *manifest.Manifest](c.CacheMaxSize, nil, c.CacheTTL)
}

// makeCacheKey creates a cache key for the given input, or "" when the
// input cannot be cached.
func makeCacheKey(s manifestInput) string {
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
	default:
		return ""
	}
}

// resolve decodes the manifest from whichever input was provided, using
// the cache when enabled.
func (s manifestInput) resolve() (*manifest.Manifest, error) {
	if s.File != "" && s.Content != "" {
		return nil, fmt.Errorf("only one of manifest.file or manifest.content may be provided")
	}
	if s.isEmpty() {
		return nil, fmt.Errorf("manifest.file or manifest.content must be provided")
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline manifest size %d bytes exceeds maximum %d bytes; use file input instead, or set RAILSCONST_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
	}
	if key != "" {
		if cached, ok := manifestCache.Get(key); ok {
			return cached, nil
		}
	}

	var m *manifest.Manifest
	var err error
	if s.File != "" {
		m, err = manifest.LoadWithOptions(manifest.WithFilePath(s.File))
	} else {
		m, err = manifest.LoadWithOptions(manifest.WithBytes([]byte(s.Content)))
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		manifestCache.Add(key, m)
	}
	return m, nil
}
