package normalizer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jinzhu/inflection"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/railsconst/internal/naming"
	"github.com/erraggy/railsconst/rcerrors"
)

// Inflector supplies the English inflections the transformers are built on.
// Implementations must be safe for concurrent use.
type Inflector interface {
	// Pluralize returns the plural form of word, e.g. "name" -> "names".
	Pluralize(word string) string
	// Singularize returns the singular form of word, e.g. "model_ones" -> "model_one".
	Singularize(word string) string
	// Camelize converts an underscored path to a class name, '/' becoming "::".
	Camelize(term string) string
	// Underscore converts a class name to an underscored path, "::" becoming '/'.
	Underscore(word string) string
	// Tableize returns the table name for a class name: underscored and pluralized.
	Tableize(name string) string
}

// DefaultInflector uses the Rails inflection rule set from
// github.com/jinzhu/inflection and ActiveSupport-style casing.
type DefaultInflector struct{}

// Pluralize implements Inflector.
func (DefaultInflector) Pluralize(word string) string {
	return inflection.Plural(word)
}

// Singularize implements Inflector.
func (DefaultInflector) Singularize(word string) string {
	return inflection.Singular(word)
}

// Camelize implements Inflector.
func (DefaultInflector) Camelize(term string) string {
	return naming.Camelize(term)
}

// Underscore implements Inflector.
func (DefaultInflector) Underscore(word string) string {
	return naming.Underscore(word)
}

// Tableize implements Inflector.
func (d DefaultInflector) Tableize(name string) string {
	return d.Pluralize(d.Underscore(name))
}

// Ensure DefaultInflector implements Inflector at compile time.
var _ Inflector = DefaultInflector{}

// Overrides are per-word inflection exceptions layered over a base
// Inflector. Keys are matched against the last word of an identifier, so an
// override for "octopus" also applies to "giant_octopus".
type Overrides struct {
	// Plural maps a singular word to its plural form
	Plural map[string]string `yaml:"plural,omitempty" json:"plural,omitempty"`
	// Singular maps a plural word to its singular form
	Singular map[string]string `yaml:"singular,omitempty" json:"singular,omitempty"`
	// Uncountable lists words with no distinct plural
	Uncountable []string `yaml:"uncountable,omitempty" json:"uncountable,omitempty"`
}

// IsEmpty reports whether o defines no overrides.
func (o Overrides) IsEmpty() bool {
	return len(o.Plural) == 0 && len(o.Singular) == 0 && len(o.Uncountable) == 0
}

// LoadOverrides decodes YAML (or JSON) overrides from r.
//
//	plural:
//	  octopus: octopi
//	singular:
//	  octopi: octopus
//	uncountable:
//	  - equipment
func LoadOverrides(r io.Reader) (Overrides, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Overrides{}, &rcerrors.ConfigError{Option: "inflections", Message: "reading overrides", Cause: err}
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, &rcerrors.ConfigError{Option: "inflections", Message: "decoding overrides", Cause: err}
	}
	return o, nil
}

// LoadOverridesFile reads overrides from the YAML file at path.
func LoadOverridesFile(path string) (Overrides, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is operator-supplied configuration
	if err != nil {
		return Overrides{}, &rcerrors.ConfigError{Option: "inflections", Value: path, Message: "opening overrides", Cause: err}
	}
	defer func() { _ = f.Close() }()

	o, err := LoadOverrides(f)
	if err != nil {
		return Overrides{}, fmt.Errorf("normalizer: %s: %w", path, err)
	}
	return o, nil
}

// OverrideInflector consults Overrides before falling back to a base
// Inflector. It is immutable once created.
type OverrideInflector struct {
	base        Inflector
	plural      map[string]string
	singular    map[string]string
	uncountable map[string]struct{}
}

// NewOverrideInflector returns an Inflector applying o on top of base.
// A nil base uses DefaultInflector. The maps in o are copied.
func NewOverrideInflector(base Inflector, o Overrides) *OverrideInflector {
	if base == nil {
		base = DefaultInflector{}
	}
	oi := &OverrideInflector{
		base:        base,
		plural:      make(map[string]string, len(o.Plural)),
		singular:    make(map[string]string, len(o.Singular)),
		uncountable: make(map[string]struct{}, len(o.Uncountable)),
	}
	for k, v := range o.Plural {
		oi.plural[strings.ToLower(k)] = v
	}
	for k, v := range o.Singular {
		oi.singular[strings.ToLower(k)] = v
	}
	for _, w := range o.Uncountable {
		oi.uncountable[strings.ToLower(w)] = struct{}{}
	}
	return oi
}

// Pluralize implements Inflector.
func (oi *OverrideInflector) Pluralize(word string) string {
	if out, ok := oi.lookup(word, oi.plural); ok {
		return out
	}
	return oi.base.Pluralize(word)
}

// Singularize implements Inflector.
func (oi *OverrideInflector) Singularize(word string) string {
	if out, ok := oi.lookup(word, oi.singular); ok {
		return out
	}
	return oi.base.Singularize(word)
}

// Camelize implements Inflector.
func (oi *OverrideInflector) Camelize(term string) string {
	return oi.base.Camelize(term)
}

// Underscore implements Inflector.
func (oi *OverrideInflector) Underscore(word string) string {
	return oi.base.Underscore(word)
}

// Tableize implements Inflector.
func (oi *OverrideInflector) Tableize(name string) string {
	return oi.Pluralize(oi.Underscore(name))
}

// lookup applies table to the last word of word, keeping the prefix.
func (oi *OverrideInflector) lookup(word string, table map[string]string) (string, bool) {
	cut := strings.LastIndexAny(word, "_/") + 1
	prefix, last := word[:cut], word[cut:]
	key := strings.ToLower(last)
	if _, ok := oi.uncountable[key]; ok {
		return word, true
	}
	if repl, ok := table[key]; ok {
		return prefix + repl, true
	}
	return "", false
}

// Ensure OverrideInflector implements Inflector at compile time.
var _ Inflector = (*OverrideInflector)(nil)
