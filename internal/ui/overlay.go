package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dim style for background when overlay is shown
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// dimLines strips the styling of every background line, dims it and pads it
// to the full width. The result has at least height lines.
func dimLines(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i := range lines {
		dimmed := dimStyle.Render(ansi.Strip(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// bottomAnchoredOverlay renders an overlay anchored to the bottom of a dimmed background.
func bottomAnchoredOverlay(background, overlay string, width, height, overlayHeight int) string {
	bgLines := dimLines(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(height, len(bgLines)) - overlayHeight
	if startY < 0 {
		startY = 0
	}

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}
