// Package rcerrors provides structured error types for railsconst.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish a rejected action from a
// malformed token or an unsupported format.
//
// # Error Categories
//
//   - InvalidActionError: action segment outside the permitted set
//   - MalformedTokenError: token is empty or lacks the expected separators
//   - FormatError: unknown transformer kind or format selector
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	_, err := normalizer.To("users#destroy", normalizer.KindResponder, normalizer.FormatNone)
//	var actErr *rcerrors.InvalidActionError
//	if errors.As(err, &actErr) {
//	    fmt.Println("rejected:", actErr.Action)
//	}
package rcerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidAction indicates an action is not one of the permitted actions.
	ErrInvalidAction = errors.New("invalid action")

	// ErrMalformedToken indicates a naming token could not be split into its segments.
	ErrMalformedToken = errors.New("malformed token")

	// ErrUnsupportedFormat indicates an unknown kind or format selector.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InvalidActionError reports an action segment that is not permitted.
type InvalidActionError struct {
	// Action is the rejected value, as given
	Action string
	// Allowed lists the permitted actions (may be empty)
	Allowed []string
}

// Error returns a human-readable error message.
func (e *InvalidActionError) Error() string {
	msg := fmt.Sprintf("invalid action: %q is not an allowed action", e.Action)
	if len(e.Allowed) > 0 {
		msg += " (allowed: " + strings.Join(e.Allowed, ", ") + ")"
	}
	return msg
}

// Unwrap returns nil as InvalidActionError has no underlying cause.
func (e *InvalidActionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvalidActionError) Is(target error) bool {
	return target == ErrInvalidAction
}

// MalformedTokenError reports a token that does not have the shape a
// transformer needs, such as a responder token with no '#'.
type MalformedTokenError struct {
	// Token is the (normalized) token that failed to split
	Token string
	// Kind is the transformer that rejected the token
	Kind string
	// Message describes what was missing
	Message string
}

// Error returns a human-readable error message.
func (e *MalformedTokenError) Error() string {
	msg := "malformed token"
	if e.Kind != "" {
		msg += " for " + e.Kind
	}
	msg += fmt.Sprintf(" %q", e.Token)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as MalformedTokenError has no underlying cause.
func (e *MalformedTokenError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

// FormatError reports an unknown transformer kind, an unknown format
// selector, or a format applied to a transformer that takes none.
type FormatError struct {
	// Kind is the transformer kind involved (may be empty)
	Kind string
	// Format is the format selector involved (may be empty)
	Format string
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *FormatError) Error() string {
	msg := "unsupported format"
	if e.Kind != "" {
		msg += " for kind " + e.Kind
	}
	if e.Format != "" {
		msg += fmt.Sprintf(" (format: %s)", e.Format)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as FormatError has no underlying cause.
func (e *FormatError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unreadable
// override or manifest files.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
