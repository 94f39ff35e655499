package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/railsconst/internal/options"
	"github.com/erraggy/railsconst/normalizer"
	"github.com/erraggy/railsconst/rcerrors"
)

// Manifest is a batch of naming requests.
type Manifest struct {
	// Kind is the default transformer kind for entries that omit one
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// Formats are the default formats for entries that omit them
	Formats []string `yaml:"formats,omitempty" json:"formats,omitempty"`
	// Inflections are overrides applied to every entry
	Inflections normalizer.Overrides `yaml:"inflections,omitempty" json:"inflections,omitempty"`
	// Entries are the tokens to transform, in output order
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Entry is one token to transform.
type Entry struct {
	// Token is the naming token, e.g. "controller_name#index"
	Token string `yaml:"token" json:"token"`
	// Kind overrides the manifest's default kind
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// Formats overrides the manifest's default formats.
	// "none" (or an empty string) selects the bare name.
	Formats []string `yaml:"formats,omitempty" json:"formats,omitempty"`
}

// Option is a function that configures a manifest load
type Option func(*loadConfig) error

// loadConfig holds configuration for a manifest load
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
}

// WithFilePath loads the manifest from a file. "-" reads standard input.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader loads the manifest from r.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return &rcerrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes loads the manifest from data.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return &rcerrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// LoadWithOptions reads and decodes a manifest.
//
// Example:
//
//	m, err := manifest.LoadWithOptions(manifest.WithFilePath("names.yaml"))
func LoadWithOptions(opts ...Option) (*Manifest, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("manifest: invalid options: %w", err)
		}
	}
	if err := options.ValidateSingleInputSource("manifest input",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, fmt.Errorf("manifest: invalid options: %w", err)
	}

	var data []byte
	var err error
	switch {
	case cfg.filePath != nil && *cfg.filePath == "-":
		data, err = io.ReadAll(os.Stdin)
	case cfg.filePath != nil:
		data, err = os.ReadFile(*cfg.filePath)
	case cfg.reader != nil:
		data, err = io.ReadAll(cfg.reader)
	default:
		data = cfg.bytes
	}
	if err != nil {
		return nil, &rcerrors.ConfigError{Option: "manifest input", Message: "reading manifest", Cause: err}
	}

	return decode(data)
}

func decode(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &rcerrors.ConfigError{Option: "manifest input", Message: "manifest is empty"}
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &rcerrors.ConfigError{Option: "manifest input", Message: "decoding manifest", Cause: err}
	}
	for i, e := range m.Entries {
		if e.Token == "" {
			return nil, &rcerrors.ConfigError{Option: fmt.Sprintf("entries[%d].token", i), Message: "token is required"}
		}
	}
	return &m, nil
}
