package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxStatusLines = 2
	truncationMark = "..."
)

// formatStatusForDisplay wraps a status message to the terminal width.
// It limits the text to maxStatusLines and accounts for the prefix on the
// first line. Text that does not fit is truncated with "...".
func formatStatusForDisplay(prefix, message string, maxWidth int) string {
	if message == "" {
		return ""
	}

	firstLineWidth := maxWidth - utf8.RuneCountInString(prefix)
	if firstLineWidth < 10 {
		firstLineWidth = 10
	}

	otherLineWidth := maxWidth
	if otherLineWidth < 10 {
		otherLineWidth = 10
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return prefix + message
	}

	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxStatusLines {
				truncated = true
				break
			}

			currentLineWidth = otherLineWidth
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 && len(lines) < maxStatusLines {
		lines = append(lines, currentLine.String())
	}

	if truncated {
		lastLine := lines[maxStatusLines-1]
		truncLen := utf8.RuneCountInString(truncationMark)

		if utf8.RuneCountInString(lastLine)+truncLen > otherLineWidth {
			maxRunes := otherLineWidth - truncLen
			if maxRunes > 0 {
				runes := []rune(lastLine)
				if len(runes) > maxRunes {
					lastLine = string(runes[:maxRunes])
				}
			}
		}

		lines[maxStatusLines-1] = lastLine + truncationMark
	}

	result := prefix + lines[0]
	if len(lines) > 1 {
		result += "\n" + strings.Join(lines[1:], "\n")
	}

	return result
}
