package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/renato0307/ombre/internal/domain"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "swap", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The defaults parameter should come from ui.GetDefaultKeyBindings(). Custom
// keys are checked against the effective bindings, so an override may not
// reuse a key another action keeps by default.
func (k KeyBindingsConfig) Validate(defaults map[string][]string) error {
	if k == nil {
		return nil
	}

	for name, keys := range k {
		if _, ok := defaults[name]; !ok {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
		}
	}

	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	// Track all effective keys to detect duplicates
	keyToAction := make(map[string]string)

	for _, name := range names {
		keys := defaults[name]
		if custom := k[name]; len(custom) > 0 {
			keys = custom
		}
		for _, key := range keys {
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Default values shared by flags and settings precedence checks
const (
	DefaultClipboard          = "auto"
	DefaultStatusClearDelayMs = 1800
)

// PaletteSetting is a curated pair declared in settings.json.
// Accepts {"name": "x", "from": "#..", "to": "#.."} or a bare ["#..", "#.."] tuple.
type PaletteSetting struct {
	From string `json:"from"`
	Name string `json:"name,omitempty"`
	To   string `json:"to"`
}

// UnmarshalJSON implements custom unmarshaling for PaletteSetting
func (p *PaletteSetting) UnmarshalJSON(data []byte) error {
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err == nil {
		if len(tuple) != 2 {
			return fmt.Errorf("palette tuple must have exactly 2 colors, got %d", len(tuple))
		}
		*p = PaletteSetting{From: tuple[0], To: tuple[1]}
		return nil
	}

	type plain PaletteSetting
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = PaletteSetting(obj)
	return nil
}

// Settings represents the structure of ~/.ombre/settings.json
type Settings struct {
	Clipboard          string            `json:"clipboard,omitempty"`
	Debug              *bool             `json:"debug,omitempty"`
	Directions         StringArray       `json:"directions,omitempty"`
	Keys               KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles        *int              `json:"max_log_files,omitempty"`
	Palettes           []PaletteSetting  `json:"palettes,omitempty"`
	StartCurated       *bool             `json:"start_curated,omitempty"`
	StatusClearDelayMs *int              `json:"status_clear_delay_ms,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// CuratedPalettes validates the palettes declared in settings.
// Unnamed tuples get a positional name.
func (s *Settings) CuratedPalettes() ([]domain.Palette, error) {
	result := make([]domain.Palette, 0, len(s.Palettes))
	for i, ps := range s.Palettes {
		name := ps.Name
		if name == "" {
			name = fmt.Sprintf("settings-%d", i+1)
		}
		p, err := domain.NewPalette(name, ps.From, ps.To)
		if err != nil {
			return nil, fmt.Errorf("palettes[%d]: %w", i, err)
		}
		result = append(result, p)
	}
	return result, nil
}

// GradientDirections returns the configured directions, or the defaults
func (s *Settings) GradientDirections() ([]domain.Direction, error) {
	if len(s.Directions) == 0 {
		return domain.DefaultDirections, nil
	}
	return domain.ParseDirections(s.Directions)
}

// LoadSettings loads settings from $OMBRE_HOME/settings.json (or ~/.ombre/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}
