package normalizer

import (
	"slices"

	"github.com/erraggy/railsconst/rcerrors"
)

// permittedActions is read-only. Callers get copies from Actions.
var permittedActions = [...]string{"index", "show", "create", "update", "delete"}

// Actions returns the permitted actions in their canonical order.
// The returned slice is a fresh copy.
func Actions() []string {
	return slices.Clone(permittedActions[:])
}

// IsPermitted reports whether action is exactly one of the permitted actions.
func IsPermitted(action string) bool {
	return slices.Contains(permittedActions[:], action)
}

// Permit returns action unchanged when it is permitted, and an
// *rcerrors.InvalidActionError otherwise. Matching is exact and
// case-sensitive.
func Permit(action string) (string, error) {
	if !IsPermitted(action) {
		return "", &rcerrors.InvalidActionError{Action: action, Allowed: Actions()}
	}
	return action, nil
}
