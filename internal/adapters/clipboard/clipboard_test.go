package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsmocks "github.com/renato0307/ombre/internal/ports/mocks"
)

func TestNew_UnknownMode(t *testing.T) {
	_, err := New("carrier-pigeon", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown clipboard mode")
}

func TestNew_ExplicitModes(t *testing.T) {
	cb, err := New(ModeOSC52, nil)
	require.NoError(t, err)
	assert.Equal(t, ModeOSC52, cb.Name())

	cb, err = New(ModeSystem, nil)
	require.NoError(t, err)
	assert.Equal(t, ModeSystem, cb.Name())
}

func TestNew_AutoOverSSHUsesOSC52(t *testing.T) {
	t.Setenv("SSH_TTY", "/dev/pts/3")

	cb, err := New(ModeAuto, nil)

	require.NoError(t, err)
	assert.Equal(t, ModeOSC52, cb.Name())
}

func TestOSC52_WritesEncodedSequence(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")
	var buf bytes.Buffer
	cb := NewOSC52(&buf)

	err := cb.WriteText(context.Background(), "background: #112233;")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b]52;c;")
	assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("background: #112233;")))
}

func TestOSC52_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewOSC52(&buf).WriteText(ctx, "x")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestFallback_StopsAtFirstSuccess(t *testing.T) {
	first := portsmocks.NewMockClipboard(t)
	second := portsmocks.NewMockClipboard(t)

	first.EXPECT().WriteText(mock.Anything, "css").Return(errors.New("no xclip"))
	first.EXPECT().Name().Return("system")
	second.EXPECT().WriteText(mock.Anything, "css").Return(nil)
	second.EXPECT().Name().Return("osc52")

	err := NewFallback(first, second).WriteText(context.Background(), "css")

	assert.NoError(t, err)
}

func TestFallback_JoinsErrors(t *testing.T) {
	first := portsmocks.NewMockClipboard(t)
	second := portsmocks.NewMockClipboard(t)

	first.EXPECT().WriteText(mock.Anything, "css").Return(errors.New("no xclip"))
	first.EXPECT().Name().Return("system")
	second.EXPECT().WriteText(mock.Anything, "css").Return(errors.New("tty closed"))
	second.EXPECT().Name().Return("osc52")

	err := NewFallback(first, second).WriteText(context.Background(), "css")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "system: no xclip")
	assert.Contains(t, err.Error(), "osc52: tty closed")
}

func TestFallback_Empty(t *testing.T) {
	err := NewFallback().WriteText(context.Background(), "css")

	assert.EqualError(t, err, "no clipboard backend configured")
}
