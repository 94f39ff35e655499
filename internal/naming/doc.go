// Package naming provides the case conversions railsconst applies to
// Rails identifiers: Camelize, Underscore and Capitalize.
//
// The conversions follow ActiveSupport semantics rather than generic
// PascalCase/snake_case rules. A '/' namespace separator maps to '::' when
// camelizing and back when underscoring, and Capitalize lowercases the tail
// of a word the way Ruby's String#capitalize does.
//
// These functions are used for:
//   - normalizer package: the default Inflector's Camelize and Underscore
//   - normalizer package: the klass and klass_name formats
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
