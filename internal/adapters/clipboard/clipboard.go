package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/renato0307/ombre/internal/logging"
	"github.com/renato0307/ombre/internal/ports"
)

// Clipboard modes accepted by New
const (
	ModeAuto   = "auto"
	ModeOSC52  = "osc52"
	ModeSystem = "system"
)

// New returns the clipboard backend for mode.
// out receives OSC 52 sequences and should be the controlling terminal.
func New(mode string, out io.Writer) (ports.Clipboard, error) {
	switch mode {
	case ModeSystem:
		return NewSystem(), nil
	case ModeOSC52:
		return NewOSC52(out), nil
	case ModeAuto, "":
		// Over SSH the system clipboard belongs to the remote host
		if os.Getenv("SSH_TTY") != "" || clipboard.Unsupported {
			logging.Logger.Debug("Using OSC 52 clipboard", "ssh", os.Getenv("SSH_TTY") != "", "system_unsupported", clipboard.Unsupported)
			return NewOSC52(out), nil
		}
		return NewFallback(NewSystem(), NewOSC52(out)), nil
	}
	return nil, fmt.Errorf("unknown clipboard mode %q (want one of auto, system, osc52)", mode)
}

// System writes to the desktop clipboard (pbcopy, xclip, xsel, wl-copy, win32)
type System struct{}

var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a System clipboard
func NewSystem() *System {
	return &System{}
}

func (s *System) Name() string { return ModeSystem }

// WriteText implements ports.Clipboard
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return errors.New("no system clipboard utility found")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// Fallback tries each backend in order until one succeeds
type Fallback struct {
	backends []ports.Clipboard
}

var _ ports.Clipboard = (*Fallback)(nil)

// NewFallback creates a Fallback over backends
func NewFallback(backends ...ports.Clipboard) *Fallback {
	return &Fallback{backends: backends}
}

func (f *Fallback) Name() string { return ModeAuto }

// WriteText implements ports.Clipboard. The returned error joins every
// backend failure when none succeeds.
func (f *Fallback) WriteText(ctx context.Context, text string) error {
	var errs []error
	for _, b := range f.backends {
		err := b.WriteText(ctx, text)
		if err == nil {
			logging.Logger.Debug("Clipboard write succeeded", "backend", b.Name())
			return nil
		}
		logging.Logger.Warn("Clipboard backend failed", "backend", b.Name(), "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", b.Name(), err))
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return errors.New("no clipboard backend configured")
	}
	return errors.Join(errs...)
}
