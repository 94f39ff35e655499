// Package normalizer converts compact naming tokens into Rails artifact names.
//
// # Overview
//
// A naming token is a bare identifier ("name"), a controller/action pair
// ("controller_name#index"), or a controller/action/model triple
// ("controller_name#index-model_ones"). The transformers in this package
// derive controller, model, responder, interactor and model concern names
// from tokens, and a Format selects a secondary rendering such as the class
// name or the source file path.
//
// # Quick Start
//
// The dispatcher normalizes the token before transforming it:
//
//	name, err := normalizer.To("controller_name#index", normalizer.KindResponder, normalizer.FormatKlass)
//	// name == "ControllerNames::IndexResponder"
//
// Each transformer is also callable directly:
//
//	path, err := normalizer.ModelConcern("controller_name#index-model_ones", normalizer.FormatFilePath)
//	// path == "models/concerns/controller_names/index/model_one.rb"
//
// # Formats
//
//   - FormatNone: the bare name (last segment for namespaced results)
//   - FormatWithOutSuffix: "names_controller" -> "names"
//   - FormatFileName: "index_responder.rb"
//   - FormatFilePath: "responders/controller_names/index_responder.rb"
//   - FormatKlass: "ControllerNames::IndexResponder"
//   - FormatKlassName: "NamesController" without "Controller"
//   - FormatTable: "names"
//
// The directory used by FormatFilePath is chosen by [Classify] from the
// suffix of the joined identifier.
//
// # Actions
//
// Responders, interactors and model concerns carry an action, which must be
// exactly one of index, show, create, update or delete. Any other value
// yields an [rcerrors.InvalidActionError]. Tokens missing their '#' or '-'
// separator yield an [rcerrors.MalformedTokenError].
//
// # Inflection
//
// Pluralization follows the Rails rule set via github.com/jinzhu/inflection.
// Use [NewWithOptions] with [WithOverrides] or [WithOverridesFile] to add
// project-specific exceptions, or [WithInflector] to replace the rules.
// [WithLogger] reports every dispatch decision at debug level.
//
// # Concurrency
//
// All package-level functions and Normalizer methods are safe for concurrent
// use. The permitted action list is never mutated.
package normalizer
