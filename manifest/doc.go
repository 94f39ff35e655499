// Package manifest evaluates batches of naming tokens described in YAML.
//
// A manifest lists the tokens to transform, the transformer kind for each,
// the formats to render, and optional inflection overrides shared by the
// whole batch:
//
//	kind: responder          # default for entries without a kind
//	formats: [klass]         # default for entries without formats
//	inflections:
//	  plural:
//	    person: persons
//	entries:
//	  - token: controller_name#index
//	    formats: [none, klass, file_path]
//	  - token: controller_name#index-model_ones
//	    kind: model_concern
//
// Load a manifest with [LoadWithOptions], passing exactly one of
// [WithFilePath], [WithReader] or [WithBytes], and evaluate it with
// [Manifest.Evaluate]. A failing entry is recorded in its [Result] and does
// not stop the batch.
package manifest
