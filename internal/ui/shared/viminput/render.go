package viminput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimline/internal/ui/styles"
)

// ANSI codes for the cursor cell and the selection run. The cursor uses
// reverse video; the selection a dim gray background so the two read
// differently when adjacent.
const (
	cursorOn  = "\x1b[7m"
	cursorOff = "\x1b[27m"

	selectionOn  = "\x1b[48;5;238;38;5;255m"
	selectionOff = "\x1b[49;39m"
)

// ResultMsg carries a completion Result into a Bubble Tea update loop.
type ResultMsg Result

// AwaitResult returns a command that blocks on the completion channel and
// republishes the outcome as a ResultMsg.
func AwaitResult(done <-chan Result) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg(<-done)
	}
}

// Update implements the default key dispatch for the component. Hosts that
// want their own keymap can skip it and call the operation methods directly.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !in.visible {
		return nil
	}

	if in.Mode() == ModeInsert {
		in.updateInsert(key)
	} else {
		in.updateNormal(key)
	}
	return nil
}

func (in *Input) updateInsert(key tea.KeyMsg) {
	switch key.String() {
	case "esc":
		in.Escape()
	case "enter":
		in.Close(true)
	case "ctrl+c":
		in.Close(false)
	case "backspace":
		in.Backspace()
	default:
		// Bubble Tea sends space as KeySpace, not KeyRunes.
		switch key.Type {
		case tea.KeyRunes:
			for _, r := range key.Runes {
				in.Type(r)
			}
		case tea.KeySpace:
			in.Type(' ')
		}
	}
}

func (in *Input) updateNormal(key tea.KeyMsg) {
	switch key.String() {
	case "esc":
		in.Escape()
	case "enter":
		in.Close(true)
	case "ctrl+c":
		in.Close(false)
	case "h", "left":
		in.Move(-1)
	case "l", "right":
		in.Move(1)
	case "0", "home":
		in.Move(-in.snap().count())
	case "$", "end":
		in.Move(in.snap().count())
	case "w":
		in.Forward(false)
	case "e":
		in.Forward(true)
	case "b":
		in.Backward()
	case "i":
		in.Insert(false)
	case "a":
		in.Insert(true)
	case "v":
		in.Visual()
	case "d":
		in.Delete(false)
	case "c":
		in.Delete(true)
	case "y":
		in.Yank()
	case "p":
		in.Paste(false)
	case "P":
		in.Paste(true)
	case "u":
		in.Undo()
	case "ctrl+r":
		in.Redo()
	}
}

// View renders the titled frame with the visible window of the buffer, the
// cursor cell, and any selection run. Hosts that draw their own chrome can
// use the Area/Cursor/Selected queries instead.
func (in *Input) View() string {
	if !in.visible {
		return ""
	}

	title := styles.InputTitleStyle.Render(in.title)
	frame := styles.InputFrameStyle.Width(in.opts.Width - 2).Render(in.renderLine())
	return lipgloss.JoinVertical(lipgloss.Left, title, frame)
}

// renderLine builds the content row: visible clusters with selection and
// cursor highlighting batched into runs.
func (in *Input) renderLine() string {
	snap := in.snap()
	wlo, whi := snap.window(in.opts.Width - in.opts.Margin)

	selLo, selHi := -1, -1
	if snap.start != noAnchor {
		selLo, selHi = snap.start, snap.cursor
		if selLo >= selHi {
			selLo, selHi = selHi+1, selLo+1
		}
	}

	var b strings.Builder
	cs := graphemes(snap.value)
	for i := wlo; i < whi && i < len(cs); i++ {
		switch {
		case i == snap.cursor:
			b.WriteString(cursorOn)
			b.WriteString(cs[i])
			b.WriteString(cursorOff)
		case i >= selLo && i < selHi:
			b.WriteString(selectionOn)
			b.WriteString(cs[i])
			b.WriteString(selectionOff)
		default:
			b.WriteString(cs[i])
		}
	}

	// Insert-mode cursor at the end of the buffer sits past the last
	// cluster; render it as a highlighted blank cell.
	if snap.cursor >= len(cs) || snap.cursor >= whi {
		b.WriteString(cursorOn + " " + cursorOff)
	}

	return b.String()
}
