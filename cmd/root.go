package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimline/internal/app"
	"github.com/zjrosen/vimline/internal/config"
	"github.com/zjrosen/vimline/internal/history"
	"github.com/zjrosen/vimline/internal/infrastructure/sqlite"
	"github.com/zjrosen/vimline/internal/log"
	"github.com/zjrosen/vimline/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "vimline",
	Short:   "A modal vim-style line editor for the terminal",
	Long:    `A single-line text editor with vim motions, operators, registers backed by the system clipboard, and snapshot undo. Submissions are recorded in a local history database.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vimline/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging and the in-app log overlay (L)")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("input.width", defaults.Input.Width)
	viper.SetDefault("input.margin", defaults.Input.Margin)
	viper.SetDefault("input.height", defaults.Input.Height)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("history.limit", defaults.History.Limit)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		defaultPath := config.DefaultConfigPath()
		if _, err := os.Stat(defaultPath); err != nil {
			// First run: seed a commented default config, continue on failure.
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not write default config: %v\n", writeErr)
			}
		}
		viper.SetConfigFile(defaultPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Continue with defaults when no config file is readable.
		_ = err
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(_ *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	debug := os.Getenv("VIMLINE_DEBUG") != "" || debugFlag
	if debug {
		logPath := os.Getenv("VIMLINE_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}

		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		log.Info(log.CatApp, "vimline starting", "debug", true, "logPath", logPath)
	}

	theme := styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}
	if err := styles.ApplyTheme(theme); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	var repo history.Repository
	if cfg.History.IsEnabled() {
		dbPath := cfg.History.Path
		if dbPath == "" {
			dbPath = config.DefaultHistoryPath()
		}
		db, err := sqlite.Open(dbPath)
		if err != nil {
			// History is a convenience; the editor works without it.
			log.Warn(log.CatDB, "failed to open history database", "path", dbPath, "error", err)
		} else {
			defer func() { _ = db.Close() }()
			repo = sqlite.NewHistoryRepository(db)
		}
	}

	model := app.New(app.Deps{
		Config:     cfg,
		ConfigPath: viper.ConfigFileUsed(),
		Repo:       repo,
		Debug:      debug,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
