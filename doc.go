// Package railsconst derives Rails naming conventions from compact naming tokens.
//
// # Overview
//
// A naming token names a Rails artifact in as few characters as possible:
//
//   - "names": a controller, model or resources declaration
//   - "controller_name#index": a responder or interactor for one action
//   - "controller_name#index-model_ones": a model concern scoped to an action
//
// The library consists of two packages:
//
//   - normalizer: token normalization, action validation, the naming
//     transformers and the To dispatcher
//   - manifest: YAML batches of tokens evaluated into a result table
//
// # Quick Start
//
//	name, err := normalizer.To("controller_name#index", normalizer.KindResponder, normalizer.FormatKlass)
//	// name == "ControllerNames::IndexResponder"
//
//	path, err := normalizer.Controller("names", normalizer.FormatFilePath)
//	// path == "controllers/names_controller.rb"
//
// Errors are reported through the rcerrors package and can be matched with
// errors.Is against rcerrors.ErrInvalidAction, rcerrors.ErrMalformedToken,
// rcerrors.ErrUnsupportedFormat and rcerrors.ErrConfig.
//
// # Command Line
//
// The railsconst command exposes the same conversions:
//
//	railsconst to -f file_path model_concern controller_name#index-model_ones
//	railsconst batch tokens.yaml
//	railsconst mcp
//
// The mcp subcommand serves them as Model Context Protocol tools over stdio.
//
// # Version Information
//
// Build metadata set at link time is available through [Version], [Commit],
// [BuildTime] and [GoVersion].
package railsconst
