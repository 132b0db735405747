// Package config provides configuration types and defaults for vimline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration options for vimline.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	History HistoryConfig `mapstructure:"history"`
}

// InputConfig holds the input widget geometry.
type InputConfig struct {
	// Width is the total frame width in display columns.
	Width int `mapstructure:"width"`
	// Margin is the number of columns reserved at the right edge of the
	// viewport so the cursor never touches the border.
	Margin int `mapstructure:"margin"`
	// Height is the total frame height in rows.
	Height int `mapstructure:"height"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     input:
	//       title: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "input.title": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// HistoryConfig controls submission history persistence.
type HistoryConfig struct {
	// Enabled turns history recording on. Default: true.
	Enabled *bool `mapstructure:"enabled"`
	// Path is the SQLite database location.
	// Default: ~/.config/vimline/history.db
	Path string `mapstructure:"path"`
	// Limit caps how many entries are kept per prompt. 0 means unlimited.
	Limit int `mapstructure:"limit"`
}

// IsEnabled returns whether history recording is on (defaults to true if nil).
func (h HistoryConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		Input: InputConfig{
			Width:  50,
			Margin: 2,
			Height: 3,
		},
		UI: UIConfig{
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Theme: ThemeConfig{
			Preset: "default",
		},
		History: HistoryConfig{
			Path:  DefaultHistoryPath(),
			Limit: 500,
		},
	}
}

// DefaultHistoryPath returns ~/.config/vimline/history.db, or empty string if
// the home directory is unavailable.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vimline", "history.db")
}

// DefaultConfigPath returns ~/.config/vimline/config.yaml, or empty string if
// the home directory is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vimline", "config.yaml")
}

// Validate checks the configuration for errors. Zero values fall back to
// defaults and are valid.
func (c Config) Validate() error {
	if err := ValidateInput(c.Input); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateHistory(c.History); err != nil {
		return err
	}
	return nil
}

// ValidateInput checks the input geometry for errors.
func ValidateInput(in InputConfig) error {
	if in.Width < 0 || in.Margin < 0 || in.Height < 0 {
		return fmt.Errorf("input dimensions must be non-negative")
	}
	if in.Width > 0 && in.Margin >= in.Width {
		return fmt.Errorf("input.margin (%d) must be smaller than input.width (%d)", in.Margin, in.Width)
	}
	if in.Height != 0 && in.Height < 3 {
		return fmt.Errorf("input.height must be at least 3 (one content row plus borders), got %d", in.Height)
	}
	return nil
}

// ValidateUI checks user interface options for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// ValidateHistory checks history options for errors.
func ValidateHistory(h HistoryConfig) error {
	if h.Limit < 0 {
		return fmt.Errorf("history.limit must be non-negative, got %d", h.Limit)
	}
	if h.Path != "" && !filepath.IsAbs(h.Path) {
		return fmt.Errorf("history.path must be an absolute path, got %q", h.Path)
	}
	return nil
}
