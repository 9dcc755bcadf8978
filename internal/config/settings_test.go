package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/ombre/internal/domain"
)

func TestLoadSettingsFrom_MissingFileIsNotAnError(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestLoadSettingsFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestLoadSettingsFrom_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{
		"clipboard": "osc52",
		"debug": true,
		"directions": "to right, to bottom",
		"keys": {"swap": "x", "help": ["h", "?"]},
		"max_log_files": 5,
		"palettes": [
			{"name": "sunset", "from": "#FF5E62", "to": "ff9966"},
			["#000000", "#ffffff"]
		],
		"start_curated": true,
		"status_clear_delay_ms": 900
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "osc52", s.Clipboard)
	assert.True(t, *s.Debug)
	assert.Equal(t, StringArray{"to right", "to bottom"}, s.Directions)
	assert.Equal(t, KeyBindingValue{"x"}, s.Keys["swap"])
	assert.Equal(t, KeyBindingValue{"h", "?"}, s.Keys["help"])
	assert.Equal(t, 5, *s.MaxLogFiles)
	assert.True(t, *s.StartCurated)
	assert.Equal(t, 900, *s.StatusClearDelayMs)

	palettes, err := s.CuratedPalettes()
	require.NoError(t, err)
	assert.Equal(t, []domain.Palette{
		{Name: "sunset", From: "#ff5e62", To: "#ff9966"},
		{Name: "settings-2", From: "#000000", To: "#ffffff"},
	}, palettes)

	dirs, err := s.GradientDirections()
	require.NoError(t, err)
	assert.Equal(t, []domain.Direction{domain.DirectionToRight, domain.DirectionToBottom}, dirs)
}

func TestPaletteSetting_TupleMustHaveTwoColors(t *testing.T) {
	var p PaletteSetting
	err := json.Unmarshal([]byte(`["#000000"]`), &p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 2 colors")
}

func TestCuratedPalettes_InvalidColor(t *testing.T) {
	s := &Settings{Palettes: []PaletteSetting{{Name: "bad", From: "#zzzzzz", To: "#000000"}}}

	_, err := s.CuratedPalettes()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidHex)
	assert.Contains(t, err.Error(), "palettes[0]")
}

func TestGradientDirections_Defaults(t *testing.T) {
	s := &Settings{}

	dirs, err := s.GradientDirections()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDirections, dirs)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	defaults := map[string][]string{
		"help":   {"?"},
		"quit":   {"q"},
		"random": {"r"},
		"swap":   {"s"},
	}

	tests := []struct {
		name        string
		config      KeyBindingsConfig
		expectedErr string
	}{
		{"nil config", nil, ""},
		{"valid override", KeyBindingsConfig{"swap": {"x"}}, ""},
		{"empty list keeps default", KeyBindingsConfig{"swap": {}}, ""},
		{"exchanged keys", KeyBindingsConfig{"swap": {"r"}, "random": {"s"}}, ""},
		{"unknown name", KeyBindingsConfig{"explode": {"e"}}, "unknown key binding 'explode'"},
		{"empty value", KeyBindingsConfig{"swap": {""}}, "contains empty value"},
		{"duplicate key", KeyBindingsConfig{"swap": {"x"}, "quit": {"x"}}, "is assigned to both"},
		{"reuses another default", KeyBindingsConfig{"swap": {"r"}}, "key 'r' is assigned to both 'random' and 'swap'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(defaults)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestGetOmbreHome_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OMBRE_HOME", dir)

	assert.Equal(t, dir, GetOmbreHome())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(dir, "palettes.db"), GetDBPath())
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"clipboard", "debug", "directions", "keys", "max_log_files", "palettes", "start_curated", "status_clear_delay_ms"} {
		assert.Contains(t, example, key)
		assert.NotNil(t, example[key], key)
	}
}
