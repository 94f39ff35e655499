// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/railsconst/rcerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the input in the returned *rcerrors.ConfigError, and
// sources holds one boolean per candidate source telling whether it is set.
func ValidateSingleInputSource(option string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &rcerrors.ConfigError{Option: option, Message: "must specify an input source"}
	case sourceCount > 1:
		return &rcerrors.ConfigError{Option: option, Value: sourceCount, Message: "must specify exactly one input source"}
	}
	return nil
}
