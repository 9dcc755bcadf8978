package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStatusForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		message  string
		width    int
		expected string
	}{
		{
			name:     "empty message",
			message:  "",
			width:    80,
			expected: "",
		},
		{
			name:     "fits on one line",
			message:  "Copied CSS to clipboard.",
			width:    80,
			expected: "Copied CSS to clipboard.",
		},
		{
			name:     "prefix counts against first line",
			prefix:   "Error: ",
			message:  "copy failed",
			width:    80,
			expected: "Error: copy failed",
		},
		{
			name:     "wraps to two lines",
			message:  "Copy failed. Try selecting text manually.",
			width:    30,
			expected: "Copy failed. Try selecting\ntext manually.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatStatusForDisplay(tt.prefix, tt.message, tt.width))
		})
	}
}

func TestFormatStatusForDisplay_Truncates(t *testing.T) {
	message := strings.Repeat("word ", 40)

	result := formatStatusForDisplay("", message, 20)

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, maxStatusLines)
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 20)
	}
}
