package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ombre/internal/domain"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
}

// AllKeyDefinitions contains all configurable key bindings.
// Palette actions are named after domain.Actions.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"p", ":"}, Help: "command palette", Msg: ShowCommandPaletteMsg{}},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Gradient keys
	{Name: "copy", Defaults: []string{"y"}, Help: "copy CSS to clipboard", IsPaletteAction: true, Msg: CopyCSSMsg{}},
	{Name: "curated", Defaults: []string{"c"}, Help: "random curated gradient", IsPaletteAction: true, Msg: RandomizeMsg{Mode: domain.PaletteCurated}},
	{Name: "direction_next", Defaults: []string{"d"}, Help: "next direction", IsPaletteAction: true, Msg: CycleDirectionMsg{Step: 1}},
	{Name: "direction_pick", Defaults: []string{"o"}, Help: "choose direction", IsPaletteAction: true, Msg: PickDirectionMsg{}},
	{Name: "direction_prev", Defaults: []string{"D"}, Help: "previous direction", IsPaletteAction: true, Msg: CycleDirectionMsg{Step: -1}},
	{Name: "random", Defaults: []string{"r"}, Help: "random gradient", IsPaletteAction: true, Msg: RandomizeMsg{Mode: domain.PaletteRandom}},
	{Name: "swap", Defaults: []string{"s"}, Help: "swap colors", IsPaletteAction: true, Msg: SwapColorsMsg{}},

	// Navigation keys
	{Name: "cancel", Defaults: []string{"esc"}, Help: "stop editing / close"},
	{Name: "channel_down", Defaults: []string{"down", "j"}, Help: "next channel"},
	{Name: "channel_up", Defaults: []string{"up", "k"}, Help: "previous channel"},
	{Name: "decrease", Defaults: []string{"left", "h"}, Help: "decrease channel / previous direction"},
	{Name: "decrease_fast", Defaults: []string{"shift+left", "H"}, Help: "decrease channel by 16"},
	{Name: "edit", Defaults: []string{"enter"}, Help: "edit hex / open direction list"},
	{Name: "focus_next", Defaults: []string{"tab"}, Help: "focus next control"},
	{Name: "focus_prev", Defaults: []string{"shift+tab"}, Help: "focus previous control"},
	{Name: "increase", Defaults: []string{"right", "l"}, Help: "increase channel / next direction"},
	{Name: "increase_fast", Defaults: []string{"shift+right", "L"}, Help: "increase channel by 16"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}

// GetDispatchableKeys returns key definitions that produce a message when pressed
func GetDispatchableKeys() []KeyDefinition {
	var defs []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.Msg != nil {
			defs = append(defs, def)
		}
	}
	return defs
}
