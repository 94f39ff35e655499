package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/railsconst/normalizer"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// InflectionsFile is a YAML overrides file applied to every tool call.
	InflectionsFile string

	// DefaultFormat is used by the to tool when no format is given.
	DefaultFormat normalizer.Format

	// BatchLimit caps the number of entries a single batch call may carry.
	BatchLimit int

	// MaxInlineSize caps inline manifest content, in bytes.
	MaxInlineSize int64

	// CacheEnabled turns on caching of decoded manifests.
	CacheEnabled bool
	// CacheMaxSize is the maximum number of cached manifests.
	CacheMaxSize int
	// CacheTTL is how long a decoded manifest stays cached.
	CacheTTL time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RAILSCONST_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		InflectionsFile: os.Getenv("RAILSCONST_INFLECTIONS_FILE"),
		DefaultFormat:   envFormat("RAILSCONST_DEFAULT_FORMAT"),
		BatchLimit:      envInt("RAILSCONST_BATCH_LIMIT", 500),
		MaxInlineSize:   int64(envInt("RAILSCONST_MAX_INLINE_SIZE", 1<<20)),
		CacheEnabled:    envBool("RAILSCONST_CACHE_ENABLED", true),
		CacheMaxSize:    envInt("RAILSCONST_CACHE_MAX_SIZE", 16),
		CacheTTL:        envDuration("RAILSCONST_CACHE_TTL", 5*time.Minute),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
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
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

func envFormat(key string) normalizer.Format {
	v := os.Getenv(key)
	if v == "" {
		return normalizer.FormatNone
	}
	f, err := normalizer.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return normalizer.FormatNone
	}
	return f
}

// newNormalizer builds the Normalizer shared by all tool handlers.
// An unreadable overrides file logs a warning and falls back to the
// default rules.
func newNormalizer(c *serverConfig) *normalizer.Normalizer {
	logger := normalizer.NewSlogAdapter(slog.Default()).With("component", "mcpserver")
	n, err := normalizer.NewWithOptions(
		normalizer.WithOverridesFile(c.InflectionsFile),
		normalizer.WithLogger(logger),
	)
	if err != nil {
		slog.Warn("invalid inflections file, using default rules", "file", c.InflectionsFile, "error", err) //nolint:gosec // G706: values are structured log fields, not format strings
		n = normalizer.New()
		n.Logger = logger
	}
	return n
}
