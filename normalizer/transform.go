package normalizer

import (
	"strings"

	"github.com/erraggy/railsconst/rcerrors"
)

// Controller returns the plural controller name for name, e.g. "name",
// "Names" and "names_controller" all give "names_controller".
func (n *Normalizer) Controller(name string, format Format) (string, error) {
	return n.finish(KindController, []string{n.controllerBase(name) + controllerSuffix}, format)
}

// controllerBase is the pluralized, underscored controller name with any
// "_controller" suffix removed.
func (n *Normalizer) controllerBase(name string) string {
	inf := n.inflector()
	return inf.Pluralize(WithOutSuffix(inf.Underscore(name)))
}

// Model returns the singular underscored model name, e.g. "Names" -> "name".
func (n *Normalizer) Model(name string, format Format) (string, error) {
	return n.finish(KindModel, []string{n.modelBase(name)}, format)
}

func (n *Normalizer) modelBase(name string) string {
	inf := n.inflector()
	return inf.Underscore(inf.Singularize(name))
}

// Resources returns a route declaration, e.g. "resources :names".
func (n *Normalizer) Resources(name string) string {
	return "resources :" + n.controllerBase(name)
}

// Responder returns the responder for a "controller#action" token.
// With FormatNone the result is the bare name ("index_responder");
// other formats apply to the namespaced form
// ("controller_names/index_responder").
func (n *Normalizer) Responder(token string, format Format) (string, error) {
	ctrl, action, err := splitAction(token, KindResponder)
	if err != nil {
		return "", err
	}
	act, err := Permit(action)
	if err != nil {
		return "", err
	}
	return n.finish(KindResponder, []string{n.controllerBase(ctrl), act + responderSuffix}, format)
}

// Interactor returns the interactor for a "controller#action" token,
// shaped like Responder with an "_interactor" suffix.
func (n *Normalizer) Interactor(token string, format Format) (string, error) {
	ctrl, action, err := splitAction(token, KindInteractor)
	if err != nil {
		return "", err
	}
	act, err := Permit(action)
	if err != nil {
		return "", err
	}
	return n.finish(KindInteractor, []string{n.controllerBase(ctrl), act + interactorSuffix}, format)
}

// ModelConcern returns the model concern for a
// "controller#action-model" token. The segments are the controller
// without suffix, the permitted action and the singular model.
func (n *Normalizer) ModelConcern(token string, format Format) (string, error) {
	segs, err := n.ModelConcernSegments(token)
	if err != nil {
		return "", err
	}
	return n.finish(KindModelConcern, segs[:], format)
}

// ModelConcernSegments splits a "controller#action-model" token into its
// controller, action and model segments, each already transformed.
func (n *Normalizer) ModelConcernSegments(token string) ([3]string, error) {
	ctrl, rest, err := splitAction(token, KindModelConcern)
	if err != nil {
		return [3]string{}, err
	}
	action, model, found := strings.Cut(rest, "-")
	if !found {
		return [3]string{}, &rcerrors.MalformedTokenError{Token: token, Kind: KindModelConcern.String(), Message: "missing '-' separator"}
	}
	if model == "" {
		return [3]string{}, &rcerrors.MalformedTokenError{Token: token, Kind: KindModelConcern.String(), Message: "empty model segment"}
	}
	if strings.Contains(model, "-") {
		return [3]string{}, &rcerrors.MalformedTokenError{Token: token, Kind: KindModelConcern.String(), Message: "more than one '-' separator"}
	}
	act, err := Permit(action)
	if err != nil {
		return [3]string{}, err
	}
	return [3]string{n.controllerBase(ctrl), act, n.modelBase(model)}, nil
}

// finish returns the last segment when no format is requested, otherwise
// the format applied to the '/'-joined segments.
func (n *Normalizer) finish(kind Kind, segments []string, format Format) (string, error) {
	if format == FormatNone {
		return segments[len(segments)-1], nil
	}
	return n.applyFormat(kind, strings.Join(segments, "/"), format)
}

// splitAction splits "controller#action" at its single '#'.
func splitAction(token string, kind Kind) (string, string, error) {
	ctrl, action, found := strings.Cut(token, "#")
	if !found {
		return "", "", &rcerrors.MalformedTokenError{Token: token, Kind: kind.String(), Message: "missing '#' separator"}
	}
	if ctrl == "" {
		return "", "", &rcerrors.MalformedTokenError{Token: token, Kind: kind.String(), Message: "empty controller segment"}
	}
	if strings.Contains(action, "#") {
		return "", "", &rcerrors.MalformedTokenError{Token: token, Kind: kind.String(), Message: "more than one '#' separator"}
	}
	return ctrl, action, nil
}

// Controller returns the controller name for name using the default Normalizer.
func Controller(name string, format Format) (string, error) {
	return defaultNormalizer.Controller(name, format)
}

// Model returns the model name for name using the default Normalizer.
func Model(name string, format Format) (string, error) {
	return defaultNormalizer.Model(name, format)
}

// Resources returns the route declaration for name using the default Normalizer.
func Resources(name string) string {
	return defaultNormalizer.Resources(name)
}

// Responder returns the responder for token using the default Normalizer.
func Responder(token string, format Format) (string, error) {
	return defaultNormalizer.Responder(token, format)
}

// Interactor returns the interactor for token using the default Normalizer.
func Interactor(token string, format Format) (string, error) {
	return defaultNormalizer.Interactor(token, format)
}

// ModelConcern returns the model concern for token using the default Normalizer.
func ModelConcern(token string, format Format) (string, error) {
	return defaultNormalizer.ModelConcern(token, format)
}
