// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the stock vimline color scheme.
// Color values are the Dark values of the AdaptiveColor definitions.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default vimline theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenInputTitle:     "#54A0FF",
		TokenInputBorder:    "#8C8C8C",
		TokenInputSelection: "#444444",

		TokenModeNormal: "#3498DB",
		TokenModeInsert: "#73F59F",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenStatusBarBg: "#2D3436",
		TokenStatusBarFg: "#CCCCCC",
	},
}

// CatppuccinMochaPreset uses the Catppuccin Mocha palette.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#7F849C", // overlay1

		TokenBorderDefault: "#585B70", // surface2
		TokenBorderFocus:   "#B4BEFE", // lavender

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenInputTitle:     "#89B4FA", // blue
		TokenInputBorder:    "#585B70", // surface2
		TokenInputSelection: "#45475A", // surface1

		TokenModeNormal: "#89B4FA", // blue
		TokenModeInsert: "#A6E3A1", // green

		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#585B70", // surface2

		TokenStatusBarBg: "#313244", // surface0
		TokenStatusBarFg: "#CDD6F4", // text
	},
}

// NordPreset uses the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#D8DEE9", // snow storm 1
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextPlaceholder: "#616E88",

		TokenBorderDefault: "#4C566A",
		TokenBorderFocus:   "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenInputTitle:     "#81A1C1", // frost 3
		TokenInputBorder:    "#4C566A",
		TokenInputSelection: "#434C5E", // polar night 3

		TokenModeNormal: "#81A1C1",
		TokenModeInsert: "#A3BE8C",

		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",

		TokenStatusBarBg: "#3B4252", // polar night 2
		TokenStatusBarFg: "#ECEFF4",
	},
}

// HighContrastPreset maximizes legibility on low-quality displays.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Black and white with saturated accents",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#AAAAAA",
		TokenTextPlaceholder: "#AAAAAA",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenInputTitle:     "#FFFFFF",
		TokenInputBorder:    "#FFFFFF",
		TokenInputSelection: "#666666",

		TokenModeNormal: "#00FFFF",
		TokenModeInsert: "#00FF00",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenStatusBarBg: "#FFFFFF",
		TokenStatusBarFg: "#000000",
	},
}
