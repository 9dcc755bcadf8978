package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/renato0307/ombre/internal/domain"
	"github.com/renato0307/ombre/internal/theme"
)

const (
	channelBarWidth = 16
	invalidMarker   = "✗ invalid hex"
	swatchWidth     = 6
)

// channels lists the picker channels in display order
var channels = []domain.Channel{domain.ChannelRed, domain.ChannelGreen, domain.ChannelBlue}

// newHexInput creates the text field for one color slot
func newHexInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "hex "
	ti.PromptStyle = theme.HelpLabelStyle
	ti.Placeholder = "#rrggbb"
	ti.CharLimit = 16
	ti.Width = 10
	return ti
}

// renderChannelBar draws one channel as a proportional bar with its value
func renderChannelBar(ch domain.Channel, value uint8, selected bool) string {
	filled := int(value) * channelBarWidth / 256
	if value > 0 && filled == 0 {
		filled = 1
	}
	bar := theme.ChannelStyle(int(ch)).Render(strings.Repeat("█", filled)) +
		theme.TrackStyle.Render(strings.Repeat("░", channelBarWidth-filled))

	label := theme.HelpLabelStyle.Render(ch.String())
	if selected {
		label = theme.FocusedLabelStyle.Render("›" + ch.String())
	} else {
		label = " " + label
	}
	return fmt.Sprintf("%s %s %3d", label, bar, value)
}

// renderPicker draws the swatch and the three channel bars for a color.
// The selected channel is only highlighted while the picker has focus.
func renderPicker(c domain.Color, selected domain.Channel, focused bool) string {
	swatch := theme.SwatchStyle(string(c)).Render(strings.Repeat(" ", swatchWidth))

	lines := make([]string, 0, len(channels))
	for _, ch := range channels {
		lines = append(lines, swatch+"  "+renderChannelBar(ch, c.Channel(ch), focused && ch == selected))
	}
	return strings.Join(lines, "\n")
}

// renderHexField draws the text field with the invalid marker when needed
func renderHexField(input textinput.Model, valid bool) string {
	view := input.View()
	if valid {
		return view
	}
	return theme.InvalidTextStyle.Render(view) + "  " + theme.InvalidMarkerStyle.Render(invalidMarker)
}

// slotLabel renders the row label, highlighted when any control of the slot has focus
func slotLabel(slot domain.Slot, focused bool) string {
	text := "Color " + slot.String()
	if focused {
		return theme.FocusedLabelStyle.Width(theme.LabelStyle.GetWidth()).Render(text)
	}
	return theme.LabelStyle.Render(text)
}
