package normalizer

import (
	"strings"

	"github.com/erraggy/railsconst/rcerrors"
)

// Format selects a secondary transformation applied to a transformer's
// base result.
type Format string

const (
	// FormatNone returns the base identifier, or its last segment for
	// namespaced results.
	FormatNone Format = ""
	// FormatWithOutSuffix removes the "_controller" suffix.
	FormatWithOutSuffix Format = "with_out_suffix"
	// FormatFileName returns the last segment with the ".rb" extension.
	FormatFileName Format = "file_name"
	// FormatFilePath returns the full source path, e.g. "controllers/names_controller.rb".
	FormatFilePath Format = "file_path"
	// FormatKlass returns the class name, e.g. "ControllerNames::IndexResponder".
	FormatKlass Format = "klass"
	// FormatKlassName returns the class name without the controller suffix.
	FormatKlassName Format = "klass_name"
	// FormatTable returns the table name, e.g. "names".
	FormatTable Format = "table"
)

const (
	controllerSuffix = "_controller"
	responderSuffix  = "_responder"
	interactorSuffix = "_interactor"
	sourceExtension  = "rb"
)

var allFormats = [...]Format{
	FormatWithOutSuffix,
	FormatFileName,
	FormatFilePath,
	FormatKlass,
	FormatKlassName,
	FormatTable,
}

// Formats returns every non-empty format selector.
func Formats() []Format {
	out := make([]Format, len(allFormats))
	copy(out, allFormats[:])
	return out
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is FormatNone or a known format.
func (f Format) IsValid() bool {
	if f == FormatNone {
		return true
	}
	for _, known := range allFormats {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat converts a format name to a Format. The empty string and
// "none" map to FormatNone, and a leading ':' is accepted.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.TrimSpace(s), ":")
	if name == "none" {
		return FormatNone, nil
	}
	f := Format(name)
	if !f.IsValid() {
		return "", &rcerrors.FormatError{Format: s, Message: "unknown format"}
	}
	return f, nil
}

// WithOutSuffix removes every "_controller" occurrence from s.
func WithOutSuffix(s string) string {
	return strings.ReplaceAll(s, controllerSuffix, "")
}

// FileName returns the last '/' segment of s with the ".rb" extension.
func FileName(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	return s + "." + sourceExtension
}

// FilePath returns s under the directory of its artifact type, with the
// ".rb" extension. See Classify for how the directory is chosen.
func FilePath(s string) string {
	return Classify(s).Dir() + "/" + s + "." + sourceExtension
}

// Klass returns the class name of s using the default inflector.
func Klass(s string) string {
	return defaultNormalizer.klass(s)
}

// KlassName returns the class name of s without its controller suffix.
func KlassName(s string) string {
	return defaultNormalizer.klass(WithOutSuffix(s))
}

// Table returns the table name of s using the default inflector.
func Table(s string) string {
	return defaultNormalizer.inflector().Tableize(s)
}

func (n *Normalizer) klass(s string) string {
	return n.inflector().Camelize(s)
}

// applyFormat applies f to the joined identifier s.
func (n *Normalizer) applyFormat(kind Kind, s string, f Format) (string, error) {
	switch f {
	case FormatNone:
		return s, nil
	case FormatWithOutSuffix:
		return WithOutSuffix(s), nil
	case FormatFileName:
		return FileName(s), nil
	case FormatFilePath:
		return FilePath(s), nil
	case FormatKlass:
		return n.klass(s), nil
	case FormatKlassName:
		return n.klass(WithOutSuffix(s)), nil
	case FormatTable:
		return n.inflector().Tableize(s), nil
	default:
		return "", &rcerrors.FormatError{Kind: kind.String(), Format: f.String(), Message: "unknown format"}
	}
}
