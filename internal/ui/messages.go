package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ombre/internal/domain"
)

// Action messages. Key bindings and the command palette both produce these;
// Model handles them in updateEditor.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// RandomizeMsg requests a new random gradient
type RandomizeMsg struct {
	Mode domain.PaletteMode
}

// SwapColorsMsg requests swapping the two colors
type SwapColorsMsg struct{}

// CopyCSSMsg requests copying the current CSS to the clipboard
type CopyCSSMsg struct{}

// CycleDirectionMsg moves the direction selector by Step positions
type CycleDirectionMsg struct {
	Step int
}

// PickDirectionMsg requests showing the direction dialog
type PickDirectionMsg struct{}

// Result messages

// copyResultMsg carries the outcome of an asynchronous clipboard write
type copyResultMsg struct {
	err error
}

// clearStatusMsg is sent after the status clear delay. Only the status with
// the matching id is cleared.
type clearStatusMsg struct {
	id int
}

// dispatchMsg turns a prototype message into a command
func dispatchMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
