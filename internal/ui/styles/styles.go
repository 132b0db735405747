// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"} // Focused borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Input widget colors
	InputTitleColor     = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"}
	InputBorderColor    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	InputSelectionColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#444444"}

	// Mode indicator colors
	ModeNormalColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#3498DB"}
	ModeInsertColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Status bar colors
	StatusBarBgColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#2D3436"}
	StatusBarFgColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
)

// Styles rebuilt by rebuildStyles after a theme change.
var (
	// InputTitleStyle renders the label above the input frame.
	InputTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(InputTitleColor)

	// InputFrameStyle is the bordered box around the input line.
	InputFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(InputBorderColor)

	// PlaceholderStyle renders hint text inside an empty input.
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)

	// ModeNormalStyle and ModeInsertStyle render the mode indicator in the
	// status bar.
	ModeNormalStyle = lipgloss.NewStyle().Bold(true).Foreground(ModeNormalColor)
	ModeInsertStyle = lipgloss.NewStyle().Bold(true).Foreground(ModeInsertColor)

	// StatusBarStyle is the one-row bar at the bottom of the app.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(StatusBarFgColor).
			Background(StatusBarBgColor)

	// HelpTextStyle renders keybinding hints.
	HelpTextStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// OverlayTitleStyle and OverlayBorderStyle frame modal overlays
	// (help, log viewer).
	OverlayTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(OverlayTitleColor)
	OverlayBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(OverlayBorderColor)

	// ErrorTextStyle and SuccessTextStyle render transient status messages.
	ErrorTextStyle   = lipgloss.NewStyle().Foreground(StatusErrorColor)
	SuccessTextStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
)

// rebuildStyles recreates every Style from the current color variables, then
// runs the registered rebuilders so dependent packages refresh too.
func rebuildStyles() {
	InputTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(InputTitleColor)
	InputFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(InputBorderColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	ModeNormalStyle = lipgloss.NewStyle().Bold(true).Foreground(ModeNormalColor)
	ModeInsertStyle = lipgloss.NewStyle().Bold(true).Foreground(ModeInsertColor)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(StatusBarFgColor).
		Background(StatusBarBgColor)
	HelpTextStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	OverlayTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(OverlayTitleColor)
	OverlayBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(OverlayBorderColor)
	ErrorTextStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	SuccessTextStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}
