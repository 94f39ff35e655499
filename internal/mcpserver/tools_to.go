package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/railsconst/normalizer"
)

type toInput struct {
	Token   string   `json:"token"             jsonschema:"The naming token, e.g. controller_name#index"`
	Kind    string   `json:"kind"              jsonschema:"Transformer kind: controller, model, resources, responder, interactor, model_concern, normalize or permit"`
	Format  *string  `json:"format,omitempty"  jsonschema:"Format to apply (default from RAILSCONST_DEFAULT_FORMAT, otherwise none)"`
	Formats []string `json:"formats,omitempty" jsonschema:"Several formats at once; takes precedence over format"`
}

type toRendering struct {
	Format string `json:"format"`
	Value  string `json:"value"`
}

type toOutput struct {
	Token      string        `json:"token"`
	Normalized string        `json:"normalized"`
	Kind       string        `json:"kind"`
	Value      string        `json:"value,omitempty"`
	Renderings []toRendering `json:"renderings,omitempty"`
}

func handleTo(_ context.Context, _ *mcp.CallToolRequest, input toInput) (*mcp.CallToolResult, toOutput, error) {
	output := toOutput{
		Token:      input.Token,
		Normalized: normalizer.Normalize(input.Token),
		Kind:       input.Kind,
	}

	if len(input.Formats) == 0 {
		value, err := nz.ToString(input.Token, input.Kind, formatOrDefault(input.Format))
		if err != nil {
			return errResult(err), toOutput{}, nil
		}
		output.Value = value
		return nil, output, nil
	}

	output.Renderings = make([]toRendering, 0, len(input.Formats))
	for _, f := range input.Formats {
		value, err := nz.ToString(input.Token, input.Kind, f)
		if err != nil {
			return errResult(err), toOutput{}, nil
		}
		output.Renderings = append(output.Renderings, toRendering{Format: f, Value: value})
	}
	return nil, output, nil
}

type normalizeInput struct {
	Token string `json:"token" jsonschema:"The text to normalize"`
}

type normalizeOutput struct {
	Normalized string `json:"normalized"`
}

func handleNormalize(_ context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	return nil, normalizeOutput{Normalized: normalizer.Normalize(input.Token)}, nil
}

type permitInput struct {
	Action string `json:"action" jsonschema:"The action to check"`
}

type permitOutput struct {
	Action    string   `json:"action"`
	Permitted bool     `json:"permitted"`
	Allowed   []string `json:"allowed"`
}

func handlePermit(_ context.Context, _ *mcp.CallToolRequest, input permitInput) (*mcp.CallToolResult, permitOutput, error) {
	action := normalizer.Normalize(input.Action)
	return nil, permitOutput{
		Action:    action,
		Permitted: normalizer.IsPermitted(action),
		Allowed:   normalizer.Actions(),
	}, nil
}
