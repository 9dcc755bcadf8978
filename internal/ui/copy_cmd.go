package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ombre/internal/services"
)

// copyTimeout bounds a single clipboard write
const copyTimeout = 5 * time.Second

// copyCSSCmd writes the CSS to the clipboard off the update loop
func copyCSSCmd(clipboard *services.ClipboardService, css string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return copyResultMsg{err: clipboard.Copy(ctx, css)}
	}
}
