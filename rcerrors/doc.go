// Package rcerrors provides structured error types for the railsconst library.
//
// Import path: github.com/erraggy/railsconst/rcerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [InvalidActionError]: an action segment outside index, show, create, update, delete
//   - [MalformedTokenError]: an empty token, or one missing its '#' or '-' separator
//   - [FormatError]: an unknown kind or format, or a format the transformer does not take
//   - [ConfigError]: invalid options, unreadable override or manifest input
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidAction]: Matches any [InvalidActionError]
//   - [ErrMalformedToken]: Matches any [MalformedTokenError]
//   - [ErrUnsupportedFormat]: Matches any [FormatError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	_, err := normalizer.Interactor("users#destroy", normalizer.FormatNone)
//	if errors.Is(err, rcerrors.ErrInvalidAction) {
//	    // Reject the request
//	}
//
// Extract error details with errors.As():
//
//	var tokErr *rcerrors.MalformedTokenError
//	if errors.As(err, &tokErr) {
//	    fmt.Printf("bad %s token: %s\n", tokErr.Kind, tokErr.Token)
//	}
//
// # Error Chaining
//
// [ConfigError] supports chaining via its Cause field and Unwrap() method,
// so the root cause of a failed override or manifest load can be inspected:
//
//	var cfgErr *rcerrors.ConfigError
//	if errors.As(err, &cfgErr) && errors.Is(cfgErr.Cause, os.ErrNotExist) {
//	    // The overrides file doesn't exist
//	}
package rcerrors
