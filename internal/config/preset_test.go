package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset([]byte(`{"name": "sevens", "table": 7, "questions": "all", "random_order": false}`))
	require.NoError(t, err)
	assert.Equal(t, "sevens", p.Name)

	g := Default().Game
	p.Apply(&g)
	assert.Equal(t, 7, g.Table)
	assert.Equal(t, "all", g.Questions)
	assert.False(t, g.RandomOrder)
	assert.Equal(t, Default().Game.MaxMultiplier, g.MaxMultiplier, "omitted fields keep their value")
}

func TestParsePreset_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{table: 7`},
		{"table too large", `{"table": 13}`},
		{"table not integer", `{"table": 2.5}`},
		{"unknown questions", `{"questions": "7"}`},
		{"unknown field", `{"difficulty": "hard"}`},
		{"not an object", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePreset([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_multiplier": 5}`), 0o600))

	p, err := LoadPreset(path)
	require.NoError(t, err)
	require.NotNil(t, p.MaxMultiplier)
	assert.Equal(t, 5, *p.MaxMultiplier)

	_, err = LoadPreset(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
