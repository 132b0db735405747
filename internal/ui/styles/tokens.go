// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Input widget
	TokenInputTitle     ColorToken = "input.title"
	TokenInputBorder    ColorToken = "input.border"
	TokenInputSelection ColorToken = "input.selection"

	// Mode indicator
	TokenModeNormal ColorToken = "mode.normal"
	TokenModeInsert ColorToken = "mode.insert"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Status bar
	TokenStatusBarBg ColorToken = "statusbar.bg"
	TokenStatusBarFg ColorToken = "statusbar.fg"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenInputTitle,
		TokenInputBorder,
		TokenInputSelection,

		TokenModeNormal,
		TokenModeInsert,

		TokenOverlayTitle,
		TokenOverlayBorder,

		TokenStatusBarBg,
		TokenStatusBarFg,
	}
}
