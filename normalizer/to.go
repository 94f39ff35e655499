package normalizer

import (
	"github.com/erraggy/railsconst/rcerrors"
)

// To normalizes token and dispatches it to the transformer named by kind,
// applying format to the result.
//
//	To("controller_name#index", KindResponder, FormatKlass)
//	// "ControllerNames::IndexResponder"
func (n *Normalizer) To(token string, kind Kind, format Format) (string, error) {
	normalized := Normalize(token)
	log := n.log().With("kind", kind.String(), "format", format.String())

	out, err := n.dispatch(normalized, kind, format)
	if err != nil {
		log.Debug("rejected token", "token", normalized, "error", err)
		return "", err
	}
	log.Debug("transformed token", "token", normalized, "result", out)
	return out, nil
}

func (n *Normalizer) dispatch(token string, kind Kind, format Format) (string, error) {
	if !kind.IsValid() {
		return "", &rcerrors.FormatError{Kind: kind.String(), Message: "unknown kind"}
	}
	if !format.IsValid() {
		return "", &rcerrors.FormatError{Kind: kind.String(), Format: format.String(), Message: "unknown format"}
	}
	if token == "" {
		return "", &rcerrors.MalformedTokenError{Kind: kind.String(), Message: "empty token"}
	}

	switch kind {
	case KindController:
		return n.Controller(token, format)
	case KindModel:
		return n.Model(token, format)
	case KindResources:
		if format != FormatNone {
			return "", &rcerrors.FormatError{Kind: kind.String(), Format: format.String(), Message: "resources takes no format"}
		}
		return n.Resources(token), nil
	case KindResponder:
		return n.Responder(token, format)
	case KindInteractor:
		return n.Interactor(token, format)
	case KindModelConcern:
		return n.ModelConcern(token, format)
	case KindNormalize:
		return n.finish(kind, []string{token}, format)
	default: // KindPermit
		act, err := Permit(token)
		if err != nil {
			return "", err
		}
		return n.finish(kind, []string{act}, format)
	}
}

// ToString is To with kind and format given by name, as they arrive from
// the command line, a manifest or an MCP request.
func (n *Normalizer) ToString(token, kind, format string) (string, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return "", err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	return n.To(token, k, f)
}

// To normalizes token and dispatches it using the default Normalizer.
func To(token string, kind Kind, format Format) (string, error) {
	return defaultNormalizer.To(token, kind, format)
}

// ToString is To with kind and format given by name, using the default Normalizer.
func ToString(token, kind, format string) (string, error) {
	return defaultNormalizer.ToString(token, kind, format)
}
