package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/renato0307/ombre/internal/ports"
)

// OSC52 asks the terminal emulator to set its clipboard through an
// OSC 52 escape sequence. Works over SSH and inside tmux/screen.
type OSC52 struct {
	out io.Writer
}

var _ ports.Clipboard = (*OSC52)(nil)

// NewOSC52 creates an OSC52 clipboard writing to out (os.Stderr when nil)
func NewOSC52(out io.Writer) *OSC52 {
	if out == nil {
		out = os.Stderr
	}
	return &OSC52{out: out}
}

func (o *OSC52) Name() string { return ModeOSC52 }

// WriteText implements ports.Clipboard
func (o *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}
