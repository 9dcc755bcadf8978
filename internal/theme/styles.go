package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Editor row styles
var (
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorFocus).
				Bold(true)

	InvalidMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	InvalidTextStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(10)

	TrackStyle = lipgloss.NewStyle().
			Foreground(ColorTrack)
)

// Code panel style
var CodePanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPanel).
	Foreground(ColorHighlight).
	Padding(0, 1)

// Status line styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// ChannelStyle returns the bar style for an RGB channel index (0 red, 1 green, 2 blue)
func ChannelStyle(index int) lipgloss.Style {
	colors := []Color{ColorChannelRed, ColorChannelGreen, ColorChannelBlue}
	if index < 0 || index >= len(colors) {
		return NormalStyle
	}
	return lipgloss.NewStyle().Foreground(colors[index])
}

// SwatchStyle returns a style that paints its cells with a hex background
func SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorFocus)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPromptKey)

	CommandBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	CommandDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	CommandItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorPaletteSelected).
					Bold(true)

	CommandItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	CommandShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	CommandTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)
)
