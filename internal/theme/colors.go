package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorFocus     Color = "212" // Pink - focused control
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "42"  // Green - status messages
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorPanel     Color = "238" // Code panel border
	ColorTrack     Color = "237" // Empty part of a channel bar
)

// Channel bar colors
const (
	ColorChannelRed   Color = "#ff5f5f"
	ColorChannelGreen Color = "#5fd75f"
	ColorChannelBlue  Color = "#5f87ff"
)

// Command palette colors
const (
	ColorDimmed          Color = "240"
	ColorPaletteSelected Color = "236"
	ColorPromptKey       Color = "226" // Yellow - filter prompt
	ColorScrollIndicator Color = "243"
)
