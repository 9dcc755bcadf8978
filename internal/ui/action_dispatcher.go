package ui

import tea "github.com/charmbracelet/bubbletea"

// ActionDispatcher maps key definitions to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct{}

// NewActionDispatcher creates a new action dispatcher
func NewActionDispatcher() *ActionDispatcher {
	return &ActionDispatcher{}
}

// Dispatch returns the prototype message for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}
	return def.Msg
}
