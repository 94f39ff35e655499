package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/railsconst/internal/testutil"
	"github.com/erraggy/railsconst/manifest"
	"github.com/erraggy/railsconst/normalizer"
)

func strPtr(s string) *string { return &s }

// withConfig swaps the package configuration for the duration of a test.
func withConfig(t *testing.T, c *serverConfig) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestToTool_SingleFormat(t *testing.T) {
	input := toInput{Token: "controller_name#index", Kind: "responder", Format: strPtr("klass")}
	result, output, err := handleTo(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "ControllerNames::IndexResponder", output.Value)
	assert.Equal(t, "controller_name#index", output.Normalized)
}

func TestToTool_MultipleFormats(t *testing.T) {
	input := toInput{
		Token:   "controller_name#index-model_ones",
		Kind:    "model_concern",
		Formats: []string{"none", "klass", "file_path"},
	}
	_, output, err := handleTo(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Empty(t, output.Value)
	assert.Equal(t, []toRendering{
		{Format: "none", Value: "model_one"},
		{Format: "klass", Value: "ControllerNames::Index::ModelOne"},
		{Format: "file_path", Value: "models/concerns/controller_names/index/model_one.rb"},
	}, output.Renderings)
}

func TestToTool_DefaultFormat(t *testing.T) {
	withConfig(t, &serverConfig{DefaultFormat: normalizer.FormatFilePath, BatchLimit: 10})

	_, output, err := handleTo(context.Background(), &mcp.CallToolRequest{}, toInput{Token: "name", Kind: "controller"})
	require.NoError(t, err)
	assert.Equal(t, "controllers/names_controller.rb", output.Value)

	_, output, err = handleTo(context.Background(), &mcp.CallToolRequest{}, toInput{Token: "name", Kind: "controller", Format: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "names_controller", output.Value, "explicit empty format overrides the default")
}

func TestToTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input toInput
		want  string
	}{
		{name: "invalid action", input: toInput{Token: "controller_name#bogus", Kind: "interactor"}, want: "invalid action"},
		{name: "unknown kind", input: toInput{Token: "name", Kind: "pluralize"}, want: "unknown kind"},
		{name: "unknown format in list", input: toInput{Token: "name", Kind: "model", Formats: []string{"klass", "bogus"}}, want: "unknown format"},
		{name: "malformed token", input: toInput{Token: "controller_name", Kind: "responder"}, want: "malformed token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleTo(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			require.Len(t, result.Content, 1)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}

func TestNormalizeTool(t *testing.T) {
	_, output, err := handleNormalize(context.Background(), &mcp.CallToolRequest{}, normalizeInput{Token: "　ｎormal ized\t"})
	require.NoError(t, err)
	assert.Equal(t, "normalized", output.Normalized)
}

func TestPermitTool(t *testing.T) {
	_, output, err := handlePermit(context.Background(), &mcp.CallToolRequest{}, permitInput{Action: " show "})
	require.NoError(t, err)
	assert.True(t, output.Permitted)
	assert.Equal(t, "show", output.Action)
	assert.Equal(t, []string{"index", "show", "create", "update", "delete"}, output.Allowed)

	_, output, err = handlePermit(context.Background(), &mcp.CallToolRequest{}, permitInput{Action: "destroy"})
	require.NoError(t, err)
	assert.False(t, output.Permitted)
}

func TestBatchTool(t *testing.T) {
	input := batchInput{
		Kind:        "responder",
		Inflections: normalizer.Overrides{Plural: map[string]string{"person": "persons"}},
		Entries: []manifest.Entry{
			{Token: "controller_name#index", Formats: []string{"klass"}},
			{Token: "person", Kind: "controller"},
			{Token: "controller_name#bogus"},
		},
	}

	_, output, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 3, output.Total)
	assert.Equal(t, 1, output.ErrorCount)
	require.Len(t, output.Results, 3)
	assert.Equal(t, "ControllerNames::IndexResponder", output.Results[0].Value)
	assert.Equal(t, "persons_controller", output.Results[1].Value)
	assert.NotEmpty(t, output.Results[2].Error)
}

func TestBatchTool_Manifest(t *testing.T) {
	manifestCache.Purge()
	content := "kind: interactor\nentries:\n  - token: users#create\n  - token: users#delete\n"

	t.Run("inline content", func(t *testing.T) {
		input := batchInput{Manifest: manifestInput{Content: content}}
		_, output, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.Len(t, output.Results, 2)
		assert.Equal(t, "create_interactor", output.Results[0].Value)
	})

	t.Run("file with format override", func(t *testing.T) {
		input := batchInput{
			Formats:  []string{"file_path"},
			Manifest: manifestInput{File: testutil.WriteTempFile(t, "tokens.yaml", content)},
		}
		_, output, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.Len(t, output.Results, 2)
		assert.Equal(t, "interactors/users/delete_interactor.rb", output.Results[1].Value)
	})

	t.Run("override leaves cached manifest untouched", func(t *testing.T) {
		input := batchInput{Kind: "responder", Manifest: manifestInput{Content: content}}
		_, output, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.Equal(t, "create_responder", output.Results[0].Value)

		cached, err := manifestInput{Content: content}.resolve()
		require.NoError(t, err)
		assert.Equal(t, "interactor", cached.Kind)
	})

	t.Run("entries and manifest together", func(t *testing.T) {
		input := batchInput{
			Entries:  []manifest.Entry{{Token: "users#index"}},
			Manifest: manifestInput{Content: content},
		}
		result, _, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestBatchTool_ErrorsOnly(t *testing.T) {
	input := batchInput{
		Kind:       "interactor",
		ErrorsOnly: true,
		Entries: []manifest.Entry{
			{Token: "users#index"},
			{Token: "users#destroy"},
		},
	}

	_, output, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 2, output.Total)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "users#destroy", output.Results[0].Token)
}

func TestBatchTool_Limits(t *testing.T) {
	withConfig(t, &serverConfig{BatchLimit: 1})

	t.Run("empty", func(t *testing.T) {
		result, _, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, batchInput{})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("over limit", func(t *testing.T) {
		input := batchInput{Kind: "model", Entries: []manifest.Entry{{Token: "a"}, {Token: "b"}}}
		result, _, err := handleBatch(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestNewServerRegistersTools(t *testing.T) {
	// Registration panics on invalid tool schemas.
	assert.NotPanics(t, func() { _ = newServer() })
}
