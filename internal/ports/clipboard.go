package ports

import "context"

// Clipboard writes text to a clipboard owned outside the process
type Clipboard interface {
	// Name identifies the backend in logs and status messages
	Name() string

	// WriteText replaces the clipboard contents with text
	WriteText(ctx context.Context, text string) error
}
