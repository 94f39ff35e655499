package normalizer

import (
	"strings"

	"github.com/erraggy/railsconst/rcerrors"
)

// Kind names a transformer that To can dispatch to.
type Kind string

const (
	// KindController builds a controller name, e.g. "names_controller".
	KindController Kind = "controller"
	// KindModel builds a singular model name, e.g. "name".
	KindModel Kind = "model"
	// KindResources builds a route declaration, e.g. "resources :names".
	KindResources Kind = "resources"
	// KindResponder builds a responder from "controller#action".
	KindResponder Kind = "responder"
	// KindInteractor builds an interactor from "controller#action".
	KindInteractor Kind = "interactor"
	// KindModelConcern builds a model concern from "controller#action-model".
	KindModelConcern Kind = "model_concern"
	// KindNormalize returns the normalized token itself.
	KindNormalize Kind = "normalize"
	// KindPermit validates the normalized token as an action.
	KindPermit Kind = "permit"
)

var allKinds = [...]Kind{
	KindController,
	KindModel,
	KindResources,
	KindResponder,
	KindInteractor,
	KindModelConcern,
	KindNormalize,
	KindPermit,
}

// Kinds returns every kind To accepts.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds[:])
	return out
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts a kind name to a Kind. A leading ':' is accepted so
// Ruby-style symbols such as ":responder" parse too.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimPrefix(strings.TrimSpace(s), ":"))
	if !k.IsValid() {
		return "", &rcerrors.FormatError{Kind: s, Message: "unknown kind"}
	}
	return k, nil
}
