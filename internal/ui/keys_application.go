package ui

import "github.com/charmbracelet/bubbles/key"

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	CommandPalette key.Binding
	ForceQuit      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func newApplicationKeys(b map[string]key.Binding) ApplicationKeys {
	return ApplicationKeys{
		CommandPalette: b["command_palette"],
		ForceQuit:      b["force_quit"],
		Help:           b["help"],
		Quit:           b["quit"],
	}
}

func (k ApplicationKeys) all() []key.Binding {
	return []key.Binding{k.CommandPalette, k.Help, k.Quit, k.ForceQuit}
}
