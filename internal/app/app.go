// Package app contains the root application model: a small host that wires
// the modal input widget to prompts, history, theming, and overlays.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/vimline/internal/clipboard"
	"github.com/zjrosen/vimline/internal/config"
	"github.com/zjrosen/vimline/internal/history"
	"github.com/zjrosen/vimline/internal/keys"
	"github.com/zjrosen/vimline/internal/log"
	"github.com/zjrosen/vimline/internal/ui/shared/logoverlay"
	"github.com/zjrosen/vimline/internal/ui/shared/viminput"
	"github.com/zjrosen/vimline/internal/ui/styles"
	"github.com/zjrosen/vimline/internal/watcher"
)

// Prompt names double as history keys, so renames and notes keep separate
// recall lists.
const (
	promptRename = "rename"
	promptSearch = "search"
	promptNote   = "note"
)

// themeCycle is the preset order for the T keybinding.
var themeCycle = []string{"default", "catppuccin-mocha", "nord", "high-contrast"}

// configReloadedMsg signals that the config file changed on disk.
type configReloadedMsg struct{}

// Deps carries everything the model needs from the command layer.
type Deps struct {
	Config     config.Config
	ConfigPath string
	// Repo persists submissions; nil disables history.
	Repo history.Repository
	// Debug enables the log overlay.
	Debug bool
}

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string
	keys       keys.KeyMap
	debug      bool

	input        *viminput.Input
	activePrompt string

	// Demo document the prompts edit.
	name  string
	query string
	notes []string

	repo           history.Repository
	historyVisible bool
	historyEntries []history.Entry

	help       helpView
	logOverlay logoverlay.Model

	listenerCtx    context.Context
	listenerCancel context.CancelFunc
	logListener    *log.LogListener

	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}

	themeIdx int
	status   string

	width  int
	height int
}

// New creates the application model and starts the config watcher.
func New(deps Deps) Model {
	opts := viminput.Options{
		Width:  deps.Config.Input.Width,
		Margin: deps.Config.Input.Margin,
		Height: deps.Config.Input.Height,
	}
	input := viminput.New(opts, clipboard.NewSystem())

	listenerCtx, listenerCancel := context.WithCancel(context.Background())

	m := Model{
		cfg:            deps.Config,
		configPath:     deps.ConfigPath,
		keys:           keys.DefaultKeyMap(),
		debug:          deps.Debug,
		input:          input,
		name:           "untitled",
		repo:           deps.Repo,
		help:           newHelpView(deps.Config.UI.MarkdownStyle),
		logOverlay:     logoverlay.New(),
		listenerCtx:    listenerCtx,
		listenerCancel: listenerCancel,
		themeIdx:       themeIndex(deps.Config.Theme.Preset),
	}

	if deps.Debug {
		m.logListener = log.NewListener(listenerCtx)
	}

	// Theme edits apply live; the app works fine without the watcher.
	if deps.ConfigPath != "" {
		if w, err := watcher.New(watcher.DefaultConfig(deps.ConfigPath)); err == nil {
			if ch, err := w.Start(); err == nil {
				m.watcherHandle = w
				m.watcherCh = ch
			} else {
				_ = w.Stop()
			}
		}
	}

	return m
}

func themeIndex(preset string) int {
	for i, name := range themeCycle {
		if name == preset {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcherCh != nil {
		cmds = append(cmds, watchConfig(m.watcherCh))
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// watchConfig waits for the next debounced config-file change.
func watchConfig(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return configReloadedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logOverlay.SetSize(msg.Width, msg.Height)
		m.help.setSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		m.logOverlay.Refresh()
		if m.logListener != nil {
			return m, m.logListener.Listen()
		}
		return m, nil

	case configReloadedMsg:
		return m.handleConfigReloaded()

	case viminput.ResultMsg:
		return m.handleResult(viminput.Result(msg))

	case logoverlay.CloseMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to whichever layer currently has focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	if m.input.Visible() {
		return m, m.input.Update(msg)
	}

	if m.helpVisible() {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
			m.help.visible = false
		}
		return m, nil
	}

	if m.historyVisible {
		if key.Matches(msg, m.keys.History) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
			m.historyVisible = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Rename):
		return m.openPrompt(promptRename, "Rename", m.name)

	case key.Matches(msg, m.keys.Search):
		return m.openPrompt(promptSearch, "Search", "")

	case key.Matches(msg, m.keys.Note):
		return m.openPrompt(promptNote, "Note", "")

	case key.Matches(msg, m.keys.History):
		return m.toggleHistory()

	case key.Matches(msg, m.keys.Help):
		m.help.visible = true
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		if m.debug {
			m.logOverlay.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	}

	return m, nil
}

// openPrompt arms the input widget and starts waiting on its completion
// channel. The channel is buffered so resolution never blocks the widget.
func (m Model) openPrompt(prompt, title, value string) (tea.Model, tea.Cmd) {
	done := make(chan viminput.Result, 1)
	m.input.Show(viminput.Opt{
		Title:    title,
		Value:    value,
		Position: viminput.Position{X: 2, Y: 3},
	}, done)
	m.activePrompt = prompt
	m.status = ""
	log.Debug(log.CatUI, "prompt opened", "prompt", prompt)
	return m, viminput.AwaitResult(done)
}

// handleResult consumes a completed prompt: applies the value to the demo
// document and records it in history.
func (m Model) handleResult(res viminput.Result) (tea.Model, tea.Cmd) {
	prompt := m.activePrompt
	m.activePrompt = ""

	if res.Err != nil {
		if errors.Is(res.Err, viminput.ErrCanceled) {
			m.status = "canceled"
		} else {
			m.status = res.Err.Error()
		}
		return m, nil
	}

	switch prompt {
	case promptRename:
		m.name = res.Value
		m.status = fmt.Sprintf("renamed to %q", res.Value)
	case promptSearch:
		m.query = res.Value
		m.status = fmt.Sprintf("searched %q", res.Value)
	case promptNote:
		m.notes = append(m.notes, res.Value)
		m.status = fmt.Sprintf("note added (%d total)", len(m.notes))
	}

	m.recordHistory(prompt, res.Value)
	return m, nil
}

// recordHistory persists a submission, pruning per-prompt overflow.
func (m Model) recordHistory(prompt, value string) {
	if m.repo == nil || !m.cfg.History.IsEnabled() {
		return
	}

	entry := history.NewEntry(prompt, value)
	if err := entry.Validate(); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := m.repo.Save(ctx, &entry); err != nil {
		log.ErrorErr(log.CatHistory, "failed to save history entry", err, "prompt", prompt)
		return
	}
	if limit := m.cfg.History.Limit; limit > 0 {
		if err := m.repo.Prune(ctx, limit); err != nil {
			log.Warn(log.CatHistory, "failed to prune history", "error", err)
		}
	}
}

// toggleHistory loads the recent entries and shows the panel.
func (m Model) toggleHistory() (tea.Model, tea.Cmd) {
	if m.historyVisible {
		m.historyVisible = false
		return m, nil
	}
	if m.repo == nil {
		m.status = "history disabled"
		return m, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	entries, err := m.repo.Recent(ctx, "", 20)
	if err != nil {
		log.ErrorErr(log.CatHistory, "failed to load history", err)
		m.status = "failed to load history"
		return m, nil
	}
	m.historyEntries = entries
	m.historyVisible = true
	return m, nil
}

// cycleTheme advances to the next preset and persists the choice.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.themeIdx = (m.themeIdx + 1) % len(themeCycle)
	preset := themeCycle[m.themeIdx]

	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: preset}); err != nil {
		log.ErrorErr(log.CatConfig, "failed to apply theme", err, "preset", preset)
		m.status = "failed to apply theme"
		return m, nil
	}
	m.cfg.Theme.Preset = preset
	m.help.invalidate()
	m.status = "theme: " + preset

	if m.configPath != "" {
		if err := config.SaveThemePreset(m.configPath, preset); err != nil {
			log.Warn(log.CatConfig, "failed to persist theme preset", "error", err)
		}
	}
	log.Info(log.CatConfig, "theme changed", "preset", preset)
	return m, nil
}

// handleConfigReloaded re-reads the config file and applies its theme.
func (m Model) handleConfigReloaded() (tea.Model, tea.Cmd) {
	cmd := watchConfig(m.watcherCh)

	cfg, err := config.Load(m.configPath)
	if err != nil {
		log.Warn(log.CatConfig, "failed to reload config", "error", err)
		return m, cmd
	}

	theme := styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}
	if err := styles.ApplyTheme(theme); err != nil {
		log.Warn(log.CatConfig, "reloaded config has invalid theme", "error", err)
		return m, cmd
	}

	m.cfg.Theme = cfg.Theme
	m.themeIdx = themeIndex(cfg.Theme.Preset)
	m.help.invalidate()
	m.status = "config reloaded"
	log.Info(log.CatConfig, "config reloaded", "preset", cfg.Theme.Preset)
	return m, cmd
}

func (m Model) helpVisible() bool {
	return m.help.visible
}

// View implements tea.Model.
func (m Model) View() string {
	if m.logOverlay.Visible() {
		return m.logOverlay.Overlay()
	}
	if m.help.visible {
		return m.help.view()
	}
	if m.historyVisible {
		return m.historyView()
	}

	var b strings.Builder

	b.WriteString(styles.OverlayTitleStyle.Render("vimline"))
	b.WriteString("\n\n")
	b.WriteString("  name:  " + styles.SuccessTextStyle.Render(m.name))
	b.WriteString("\n")
	if m.query != "" {
		b.WriteString("  query: " + m.query)
		b.WriteString("\n")
	}
	for i, note := range m.notes {
		b.WriteString(fmt.Sprintf("  note %d: %s\n", i+1, note))
	}
	b.WriteString("\n")

	if m.input.Visible() {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(styles.HelpTextStyle.Render("  r rename  / search  n note  H history  T theme  ? help  q quit"))
		b.WriteString("\n")
	}

	content := b.String()
	if !m.cfg.UI.ShowStatusBar {
		return content
	}

	return content + "\n" + m.statusBar()
}

// statusBar renders the bottom bar: mode indicator while a prompt is open,
// then the last status message, truncated to the terminal width.
func (m Model) statusBar() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var mode string
	if m.input.Visible() {
		switch m.input.Mode() {
		case viminput.ModeNormal:
			mode = styles.ModeNormalStyle.Render(" NORMAL ")
		case viminput.ModeInsert:
			mode = styles.ModeInsertStyle.Render(" INSERT ")
		}
	}

	text := truncate.StringWithTail(m.status, uint(max(width-12, 10)), "...")
	bar := mode + " " + text
	return styles.StatusBarStyle.Width(width).Render(bar)
}

// historyView renders the recent-submissions panel.
func (m Model) historyView() string {
	var b strings.Builder
	b.WriteString(styles.OverlayTitleStyle.Render("History"))
	b.WriteString("\n\n")

	if len(m.historyEntries) == 0 {
		b.WriteString(styles.HelpTextStyle.Render("  no submissions yet"))
	}
	for _, entry := range m.historyEntries {
		line := fmt.Sprintf("  %s  [%s] %s",
			entry.SubmittedAt.Format("2006-01-02 15:04"), entry.Prompt, entry.Value)
		b.WriteString(truncate.StringWithTail(line, uint(max(m.width-2, 20)), "..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpTextStyle.Render("  H/esc close"))

	box := styles.OverlayBorderStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.input.Close(false)
	m.listenerCancel()

	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	return nil
}
