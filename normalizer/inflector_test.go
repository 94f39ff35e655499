package normalizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/railsconst/rcerrors"
)

func TestDefaultInflector(t *testing.T) {
	inf := DefaultInflector{}

	t.Run("Pluralize", func(t *testing.T) {
		assert.Equal(t, "names", inf.Pluralize("name"))
		assert.Equal(t, "names", inf.Pluralize("names"))
		assert.Equal(t, "responders", inf.Pluralize("responder"))
		assert.Equal(t, "controller_names", inf.Pluralize("controller_name"))
		assert.Equal(t, "people", inf.Pluralize("person"))
		assert.Equal(t, "equipment", inf.Pluralize("equipment"))
	})

	t.Run("Singularize", func(t *testing.T) {
		assert.Equal(t, "model_one", inf.Singularize("model_ones"))
		assert.Equal(t, "name", inf.Singularize("name"))
		assert.Equal(t, "Name", inf.Singularize("Names"))
		assert.Equal(t, "person", inf.Singularize("people"))
	})

	t.Run("Tableize", func(t *testing.T) {
		assert.Equal(t, "names", inf.Tableize("Name"))
		assert.Equal(t, "model_ones", inf.Tableize("ModelOne"))
	})

	t.Run("Camelize and Underscore", func(t *testing.T) {
		assert.Equal(t, "ControllerNames::IndexResponder", inf.Camelize("controller_names/index_responder"))
		assert.Equal(t, "controller_names/index_responder", inf.Underscore("ControllerNames::IndexResponder"))
	})
}

func TestOverrideInflector(t *testing.T) {
	inf := NewOverrideInflector(nil, Overrides{
		Plural:      map[string]string{"octopus": "octopi"},
		Singular:    map[string]string{"Octopi": "octopus"},
		Uncountable: []string{"Staff"},
	})

	t.Run("plural override", func(t *testing.T) {
		assert.Equal(t, "octopi", inf.Pluralize("octopus"))
		assert.Equal(t, "giant_octopi", inf.Pluralize("giant_octopus"))
		assert.Equal(t, "sea/octopi", inf.Pluralize("sea/octopus"))
	})

	t.Run("singular override is case insensitive on keys", func(t *testing.T) {
		assert.Equal(t, "octopus", inf.Singularize("octopi"))
	})

	t.Run("uncountable", func(t *testing.T) {
		assert.Equal(t, "staff", inf.Pluralize("staff"))
		assert.Equal(t, "admin_staff", inf.Singularize("admin_staff"))
	})

	t.Run("falls back to base", func(t *testing.T) {
		assert.Equal(t, "names", inf.Pluralize("name"))
		assert.Equal(t, "model_one", inf.Singularize("model_ones"))
		assert.Equal(t, "NamesController", inf.Camelize("names_controller"))
		assert.Equal(t, "names_controller", inf.Underscore("NamesController"))
	})

	t.Run("tableize uses overrides", func(t *testing.T) {
		assert.Equal(t, "octopi", inf.Tableize("Octopus"))
	})

	t.Run("overrides are copied", func(t *testing.T) {
		o := Overrides{Plural: map[string]string{"cactus": "cacti"}}
		oi := NewOverrideInflector(DefaultInflector{}, o)
		o.Plural["cactus"] = "cactuses"
		assert.Equal(t, "cacti", oi.Pluralize("cactus"))
	})
}

func TestOverridesIsEmpty(t *testing.T) {
	assert.True(t, Overrides{}.IsEmpty())
	assert.False(t, Overrides{Uncountable: []string{"x"}}.IsEmpty())
}

func TestLoadOverrides(t *testing.T) {
	t.Run("valid yaml", func(t *testing.T) {
		o, err := LoadOverrides(strings.NewReader(`plural:
  octopus: octopi
singular:
  octopi: octopus
uncountable:
  - equipment
`))
		require.NoError(t, err)
		assert.Equal(t, "octopi", o.Plural["octopus"])
		assert.Equal(t, "octopus", o.Singular["octopi"])
		assert.Equal(t, []string{"equipment"}, o.Uncountable)
	})

	t.Run("json is yaml", func(t *testing.T) {
		o, err := LoadOverrides(strings.NewReader(`{"plural": {"ox": "oxen"}}`))
		require.NoError(t, err)
		assert.Equal(t, "oxen", o.Plural["ox"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadOverrides(strings.NewReader("plural: [unterminated"))
		assert.ErrorIs(t, err, rcerrors.ErrConfig)
	})
}

func TestLoadOverridesFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inflections.yaml")
		require.NoError(t, os.WriteFile(path, []byte("plural:\n  octopus: octopi\n"), 0o600))

		o, err := LoadOverridesFile(path)
		require.NoError(t, err)
		assert.Equal(t, "octopi", o.Plural["octopus"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOverridesFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, rcerrors.ErrConfig)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
