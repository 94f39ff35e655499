// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// InflectionsYAML overrides the irregular plural of "person" so tests can
// tell an override apart from the default rules.
const InflectionsYAML = `plural:
  person: persons
singular:
  persons: person
uncountable:
  - equipment
`

// WriteTempFile writes content to name inside a per-test temporary
// directory and returns the path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}

// WriteTempYAML marshals doc to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteInflections writes InflectionsYAML to a temporary file.
func WriteInflections(t *testing.T) string {
	t.Helper()
	return WriteTempFile(t, "inflections.yaml", InflectionsYAML)
}
