package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/railsconst/manifest"
	"github.com/erraggy/railsconst/normalizer"
	"github.com/erraggy/railsconst/rcerrors"
)

type batchInput struct {
	Kind        string               `json:"kind,omitempty"        jsonschema:"Default kind for entries without one"`
	Formats     []string             `json:"formats,omitempty"     jsonschema:"Default formats for entries without any"`
	Inflections normalizer.Overrides `json:"inflections,omitempty" jsonschema:"Inflection overrides for this call"`
	Entries     []manifest.Entry     `json:"entries,omitempty"     jsonschema:"Tokens to convert"`
	Manifest    manifestInput        `json:"manifest,omitempty"    jsonschema:"A YAML manifest to convert instead of inline entries"`
	ErrorsOnly  bool                 `json:"errors_only,omitempty" jsonschema:"Return only the failing entries"`
}

type batchOutput struct {
	Total      int               `json:"total"`
	ErrorCount int               `json:"error_count"`
	Results    []manifest.Result `json:"results,omitempty"`
}

func handleBatch(ctx context.Context, _ *mcp.CallToolRequest, input batchInput) (*mcp.CallToolResult, batchOutput, error) {
	m, err := input.toManifest()
	if err != nil {
		return errResult(err), batchOutput{}, nil
	}
	if len(m.Entries) > cfg.BatchLimit {
		return errResult(&rcerrors.ConfigError{
			Option:  "entries",
			Value:   len(m.Entries),
			Message: fmt.Sprintf("batch exceeds limit of %d entries", cfg.BatchLimit),
		}), batchOutput{}, nil
	}

	report, err := m.Evaluate(ctx,
		normalizer.WithInflector(nz.Inflector),
		normalizer.WithLogger(nz.Logger),
	)
	if err != nil {
		return errResult(err), batchOutput{}, nil
	}

	output := batchOutput{
		Total:      len(report.Results),
		ErrorCount: report.ErrorCount,
	}
	if !input.ErrorsOnly {
		output.Results = report.Results
		return nil, output, nil
	}
	for _, r := range report.Results {
		if r.Error != "" {
			output.Results = append(output.Results, r)
		}
	}
	return nil, output, nil
}

// toManifest builds the manifest to evaluate. A referenced manifest keeps
// its own defaults unless the call sets kind, formats or inflections.
func (in batchInput) toManifest() (*manifest.Manifest, error) {
	if in.Manifest.isEmpty() {
		if len(in.Entries) == 0 {
			return nil, &rcerrors.ConfigError{Option: "entries", Message: "at least one entry or a manifest is required"}
		}
		return &manifest.Manifest{
			Kind:        in.Kind,
			Formats:     in.Formats,
			Inflections: in.Inflections,
			Entries:     in.Entries,
		}, nil
	}
	if len(in.Entries) > 0 {
		return nil, &rcerrors.ConfigError{Option: "entries", Message: "entries and manifest are mutually exclusive"}
	}

	resolved, err := in.Manifest.resolve()
	if err != nil {
		return nil, err
	}
	m := *resolved
	if in.Kind != "" {
		m.Kind = in.Kind
	}
	if len(in.Formats) > 0 {
		m.Formats = in.Formats
	}
	if !in.Inflections.IsEmpty() {
		m.Inflections = in.Inflections
	}
	return &m, nil
}
