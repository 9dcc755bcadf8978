package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/ports"
)

// ErrNothingToCopy is returned when the text to copy is blank
var ErrNothingToCopy = errors.New("nothing to copy")

// ClipboardService copies generated CSS to the clipboard
type ClipboardService struct {
	clipboard ports.Clipboard
}

// NewClipboardService creates a new ClipboardService
func NewClipboardService(clipboard ports.Clipboard) *ClipboardService {
	return &ClipboardService{clipboard: clipboard}
}

// Copy writes the trimmed text to the clipboard
func (s *ClipboardService) Copy(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrNothingToCopy
	}

	logging.Logger.Debug("Copying to clipboard", "backend", s.clipboard.Name(), "bytes", len(text))
	if err := s.clipboard.WriteText(ctx, text); err != nil {
		logging.Logger.Error("Copy failed", "backend", s.clipboard.Name(), "error", err)
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}
