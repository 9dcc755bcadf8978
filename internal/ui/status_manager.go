package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusKind distinguishes informational messages from errors
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// StatusManager owns the status line. Informational messages clear
// themselves after a delay; errors stay until replaced.
type StatusManager struct {
	clearDelay time.Duration
	err        error
	id         int
	kind       StatusKind
	message    string
}

// NewStatusManager creates a new StatusManager with the specified auto-clear delay.
func NewStatusManager(clearDelay time.Duration) *StatusManager {
	return &StatusManager{
		clearDelay: clearDelay,
	}
}

// SetInfo shows a message and returns the command that clears it.
// A newer status supersedes the pending clear of an older one.
func (sm *StatusManager) SetInfo(message string) tea.Cmd {
	sm.id++
	sm.err = nil
	sm.kind = StatusInfo
	sm.message = message

	id := sm.id
	return tea.Tick(sm.clearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// SetError shows a persistent error message. The underlying error is kept
// for logging and debugging.
func (sm *StatusManager) SetError(message string, err error) {
	sm.id++
	sm.err = err
	sm.kind = StatusError
	sm.message = message
}

// Clear removes the current status
func (sm *StatusManager) Clear() {
	sm.id++
	sm.err = nil
	sm.kind = StatusNone
	sm.message = ""
}

// HandleClear clears the status when msg belongs to the current message
func (sm *StatusManager) HandleClear(msg clearStatusMsg) {
	if msg.id != sm.id || sm.kind != StatusInfo {
		return
	}
	sm.Clear()
}

// Err returns the error behind the current error status, if any
func (sm *StatusManager) Err() error {
	return sm.err
}

// Kind returns the kind of the current status
func (sm *StatusManager) Kind() StatusKind {
	return sm.kind
}

// Message returns the current status text
func (sm *StatusManager) Message() string {
	return sm.message
}
