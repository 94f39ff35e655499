package normalizer

import (
	"github.com/erraggy/railsconst/rcerrors"
)

// Normalizer builds Rails artifact names from naming tokens.
// A Normalizer is safe for concurrent use as long as its fields are not
// modified after first use.
type Normalizer struct {
	// Inflector supplies pluralization and casing.
	// If nil, DefaultInflector is used.
	Inflector Inflector
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// defaultNormalizer backs the package-level functions.
var defaultNormalizer = New()

// New creates a new Normalizer with the default inflector and no logging.
func New() *Normalizer {
	return &Normalizer{Inflector: DefaultInflector{}}
}

// inflector returns the configured inflector, or DefaultInflector if none is set.
func (n *Normalizer) inflector() Inflector {
	if n.Inflector != nil {
		return n.Inflector
	}
	return DefaultInflector{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (n *Normalizer) log() Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return NopLogger{}
}

// Option is a function that configures a Normalizer
type Option func(*config) error

// config holds configuration collected from options
type config struct {
	inflector Inflector
	logger    Logger
	overrides []Overrides
}

// NewWithOptions creates a Normalizer using functional options.
//
// Example:
//
//	n, err := normalizer.NewWithOptions(
//	    normalizer.WithOverridesFile("inflections.yaml"),
//	    normalizer.WithLogger(normalizer.NewSlogAdapter(nil)),
//	)
func NewWithOptions(opts ...Option) (*Normalizer, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	inf := cfg.inflector
	if inf == nil {
		inf = DefaultInflector{}
	}
	for _, o := range cfg.overrides {
		inf = NewOverrideInflector(inf, o)
	}

	return &Normalizer{Inflector: inf, Logger: cfg.logger}, nil
}

// WithInflector replaces the default inflector.
func WithInflector(inf Inflector) Option {
	return func(cfg *config) error {
		if inf == nil {
			return &rcerrors.ConfigError{Option: "inflector", Message: "inflector cannot be nil"}
		}
		cfg.inflector = inf
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(l Logger) Option {
	return func(cfg *config) error {
		cfg.logger = l
		return nil
	}
}

// WithOverrides layers per-word inflection overrides over the inflector.
// Repeated overrides stack; a later layer wins where two define the same word.
func WithOverrides(o Overrides) Option {
	return func(cfg *config) error {
		if !o.IsEmpty() {
			cfg.overrides = append(cfg.overrides, o)
		}
		return nil
	}
}

// WithOverridesFile loads overrides from a YAML file.
// An empty path is ignored.
func WithOverridesFile(path string) Option {
	return func(cfg *config) error {
		if path == "" {
			return nil
		}
		o, err := LoadOverridesFile(path)
		if err != nil {
			return err
		}
		if !o.IsEmpty() {
			cfg.overrides = append(cfg.overrides, o)
		}
		return nil
	}
}
