package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/ombre/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Gradient    GradientKeys
	Navigation  NavigationKeys

	byName map[string]key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	byName := make(map[string]key.Binding, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		byName[def.Name] = buildBinding(def.Name, defaults, customKeys)
	}

	return KeyMap{
		Application: newApplicationKeys(byName),
		Gradient:    newGradientKeys(byName),
		Navigation:  newNavigationKeys(byName),
		byName:      byName,
	}
}

// Binding returns the binding registered under a key definition name
func (k KeyMap) Binding(name string) key.Binding {
	return k.byName[name]
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.FocusNext,
		k.Gradient.Random,
		k.Gradient.Curated,
		k.Gradient.Swap,
		k.Gradient.Copy,
		k.Gradient.DirectionNext,
		k.Application.CommandPalette,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns every binding grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Navigation.all(),
		k.Gradient.all(),
		k.Application.all(),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
