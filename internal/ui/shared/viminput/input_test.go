package viminput

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/vimline/internal/clipboard"
)

// failingClipboard errors on every operation.
type failingClipboard struct{}

func (failingClipboard) ReadText(context.Context) (string, error) {
	return "", errors.New("no clipboard")
}

func (failingClipboard) WriteText(context.Context, string) error {
	return errors.New("no clipboard")
}

// newShown is the common fixture: a shown input holding value with the given
// clipboard, plus its completion channel.
func newShown(value string, clip Clipboard) (*Input, chan Result) {
	in := New(DefaultOptions(), clip)
	done := make(chan Result, 1)
	in.Show(Opt{Title: "test", Value: value}, done)
	return in, done
}

// toNormal escapes a freshly shown input into Normal mode at cursor 0.
func toNormal(in *Input) {
	in.Escape()
	in.Move(-in.snap().count())
}

// ============================================================================
// Lifecycle
// ============================================================================

func TestShowSubmit(t *testing.T) {
	in, done := newShown("old.txt", nil)

	assert.True(t, in.Visible())
	assert.Equal(t, "test", in.Title())
	assert.Equal(t, "old.txt", in.Buffer())
	assert.Equal(t, ModeInsert, in.Mode())

	in.Close(true)

	assert.False(t, in.Visible())
	res := <-done
	require.NoError(t, res.Err)
	assert.Equal(t, "old.txt", res.Value)
}

func TestShowCancel(t *testing.T) {
	in, done := newShown("draft", nil)

	in.Close(false)

	res := <-done
	assert.ErrorIs(t, res.Err, ErrCanceled)
	assert.Empty(t, res.Value)
}

// TestShowImplicitCancel verifies a second Show cancels the pending request.
func TestShowImplicitCancel(t *testing.T) {
	in := New(DefaultOptions(), nil)
	first := make(chan Result, 1)
	second := make(chan Result, 1)

	in.Show(Opt{Title: "first"}, first)
	in.Show(Opt{Title: "second", Value: "v"}, second)

	res := <-first
	assert.ErrorIs(t, res.Err, ErrCanceled)

	in.Close(true)
	res = <-second
	require.NoError(t, res.Err)
	assert.Equal(t, "v", res.Value)
}

// TestCloseOnce verifies the completion channel fires exactly once.
func TestCloseOnce(t *testing.T) {
	in, done := newShown("x", nil)

	in.Close(true)
	in.Close(false)
	in.Close(true)

	assert.Len(t, done, 1)
	res := <-done
	require.NoError(t, res.Err)
	assert.Equal(t, "x", res.Value)
}

// ============================================================================
// Typing and modes
// ============================================================================

func TestTypeAndBackspace(t *testing.T) {
	in, _ := newShown("", nil)

	in.Type('h')
	in.Type('i')
	assert.Equal(t, "hi", in.Buffer())
	assert.Equal(t, 2, in.snap().cursor)

	assert.True(t, in.Backspace())
	assert.Equal(t, "h", in.Buffer())
	assert.True(t, in.Backspace())
	assert.Equal(t, "", in.Buffer())
	assert.False(t, in.Backspace(), "backspace at start of buffer is a no-op")
}

func TestTypeMidBuffer(t *testing.T) {
	in, _ := newShown("ac", nil)
	in.Move(1)

	in.Type('b')

	assert.Equal(t, "abc", in.Buffer())
	assert.Equal(t, 2, in.snap().cursor)
}

// TestEscapeClampsCursor verifies leaving Insert mode pulls the cursor back
// onto the last character.
func TestEscapeClampsCursor(t *testing.T) {
	in, _ := newShown("", nil)
	for _, r := range "abc" {
		in.Type(r)
	}
	assert.Equal(t, 3, in.snap().cursor)

	in.Escape()

	assert.Equal(t, ModeNormal, in.Mode())
	assert.Equal(t, 2, in.snap().cursor)
}

func TestInsertAppend(t *testing.T) {
	in, _ := newShown("abc", nil)
	toNormal(in)

	assert.True(t, in.Insert(true))
	assert.Equal(t, ModeInsert, in.Mode())
	assert.Equal(t, 1, in.snap().cursor)

	in.Type('X')
	assert.Equal(t, "aXbc", in.Buffer())
}

func TestInsertBlockedWhileOperatorPending(t *testing.T) {
	in, _ := newShown("abc", nil)
	toNormal(in)
	in.Delete(false)

	assert.False(t, in.Insert(false))
	assert.Equal(t, ModeNormal, in.Mode())
}

// ============================================================================
// Motions
// ============================================================================

func TestForwardWord(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)

	assert.True(t, in.Forward(false))
	assert.Equal(t, 6, in.snap().cursor, "w lands on start of next word")

	assert.True(t, in.Forward(false))
	assert.Equal(t, 10, in.snap().cursor, "w at last word clamps to end")
}

func TestForwardEnd(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)

	in.Forward(true)
	assert.Equal(t, 4, in.snap().cursor, "e lands on end of current word")

	in.Forward(true)
	assert.Equal(t, 10, in.snap().cursor, "e again lands on end of next word")
}

func TestForwardPunctuationBoundary(t *testing.T) {
	in, _ := newShown("foo.bar", nil)
	toNormal(in)

	in.Forward(false)
	assert.Equal(t, 3, in.snap().cursor, "punctuation starts a new word")

	in.Forward(false)
	assert.Equal(t, 4, in.snap().cursor)
}

func TestForwardEmptyBuffer(t *testing.T) {
	in, _ := newShown("", nil)
	toNormal(in)

	assert.False(t, in.Forward(false))
	assert.Equal(t, 0, in.snap().cursor)
}

func TestBackwardWord(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)
	in.Move(10)

	assert.True(t, in.Backward())
	assert.Equal(t, 6, in.snap().cursor, "b lands on start of current word")

	assert.True(t, in.Backward())
	assert.Equal(t, 0, in.snap().cursor)
}

func TestBackwardAllSpace(t *testing.T) {
	in, _ := newShown("   ", nil)
	toNormal(in)
	in.Move(2)

	assert.False(t, in.Backward())
}

func TestMoveClamps(t *testing.T) {
	in, _ := newShown("abc", nil)
	toNormal(in)

	in.Move(100)
	assert.Equal(t, 2, in.snap().cursor, "Normal mode cursor rests on the last character")

	in.Move(-100)
	assert.Equal(t, 0, in.snap().cursor)
}

func TestMoveInOperatingRequiresOperator(t *testing.T) {
	in, _ := newShown("abc", nil)
	toNormal(in)

	assert.False(t, in.MoveInOperating(2))
	assert.Equal(t, 0, in.snap().cursor)

	in.Delete(false)
	assert.True(t, in.MoveInOperating(2))
	assert.Equal(t, "c", in.Buffer())
}

// ============================================================================
// Operators
// ============================================================================

func TestDeleteWord(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)

	assert.False(t, in.Delete(false), "first d only arms the operator")
	assert.Equal(t, "hello world", in.Buffer())

	in.Forward(false)

	assert.Equal(t, "world", in.Buffer())
	assert.Equal(t, 0, in.snap().cursor)
	assert.Equal(t, ModeNormal, in.Mode())
}

func TestChangeWord(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)

	in.Delete(true)
	in.Forward(false)

	assert.Equal(t, "world", in.Buffer())
	assert.Equal(t, ModeInsert, in.Mode(), "change re-enters Insert after the delete")
}

func TestDeleteLine(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)

	in.Delete(false)
	assert.True(t, in.Delete(false), "dd clears the whole buffer")

	assert.Equal(t, "", in.Buffer())
	assert.Equal(t, 0, in.snap().cursor)
	assert.Equal(t, ModeNormal, in.Mode())

	assert.True(t, in.Undo())
	assert.Equal(t, "hello world", in.Buffer(), "dd is one undo step")
}

func TestChangeLine(t *testing.T) {
	in, _ := newShown("hello", nil)
	toNormal(in)

	in.Delete(true)
	in.Delete(true)

	assert.Equal(t, "", in.Buffer())
	assert.Equal(t, ModeInsert, in.Mode())
}

func TestDeleteVisualSelection(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)

	assert.True(t, in.Visual())
	in.Move(4)
	assert.True(t, in.Delete(false))

	assert.Equal(t, " world", in.Buffer(), "selection is inclusive of the cursor character")
	assert.Equal(t, 0, in.snap().cursor)
	assert.Nil(t, in.Selected(), "operator consumes the anchor")
}

func TestDeleteVisualReversed(t *testing.T) {
	in, _ := newShown("hello", nil)
	toNormal(in)
	in.Move(4)

	in.Visual()
	in.Move(-2)
	in.Delete(false)

	assert.Equal(t, "he", in.Buffer())
}

func TestMismatchedOperatorRejected(t *testing.T) {
	in, _ := newShown("hello", nil)
	toNormal(in)

	in.Delete(false)
	assert.False(t, in.Yank(), "y while d is pending is rejected")
	assert.Equal(t, OpDelete, in.snap().op.Kind)

	in.Escape()
	assert.Equal(t, OpNone, in.snap().op.Kind, "escape cancels the pending operator")
}

func TestYankVisualSelection(t *testing.T) {
	clip := clipboard.NewMemory()
	in, _ := newShown("hello world", clip)
	toNormal(in)

	in.Visual()
	in.Move(4)
	assert.True(t, in.Yank())

	text, err := clip.ReadText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "hello world", in.Buffer(), "yank leaves the buffer intact")
}

func TestYankMotion(t *testing.T) {
	clip := clipboard.NewMemory()
	in, _ := newShown("hello world", clip)
	toNormal(in)

	assert.False(t, in.Yank(), "first y only arms the operator")
	in.Forward(false)

	text, _ := clip.ReadText(context.Background())
	assert.Equal(t, "hello ", text)
}

func TestYankLine(t *testing.T) {
	clip := clipboard.NewMemory()
	in, _ := newShown("hello world", clip)
	toNormal(in)
	in.Move(3)

	in.Yank()
	in.Yank()

	text, _ := clip.ReadText(context.Background())
	assert.Equal(t, "hello world", text, "yy copies the whole buffer")

	in.Undo()
	assert.Equal(t, "hello world", in.Buffer(), "yy records no text change to undo")
}

// ============================================================================
// Paste
// ============================================================================

func TestPasteBefore(t *testing.T) {
	clip := clipboard.NewMemory()
	require.NoError(t, clip.WriteText(context.Background(), "ab"))
	in, _ := newShown("x", clip)
	toNormal(in)

	assert.True(t, in.Paste(true))

	assert.Equal(t, "abx", in.Buffer())
	assert.Equal(t, ModeNormal, in.Mode())
	assert.Equal(t, 1, in.snap().cursor)
}

func TestPasteAfter(t *testing.T) {
	clip := clipboard.NewMemory()
	_ = clip.WriteText(context.Background(), "ab")
	in, _ := newShown("x", clip)
	toNormal(in)

	assert.True(t, in.Paste(false))

	assert.Equal(t, "xab", in.Buffer())
	assert.Equal(t, 2, in.snap().cursor)
}

func TestPasteReplacesSelection(t *testing.T) {
	clip := clipboard.NewMemory()
	_ = clip.WriteText(context.Background(), "Z")
	in, _ := newShown("hello", clip)
	toNormal(in)

	in.Visual()
	in.Move(2)
	assert.True(t, in.Paste(false))

	assert.Equal(t, "lZo", in.Buffer())
}

func TestPasteEmptyClipboard(t *testing.T) {
	in, _ := newShown("x", clipboard.NewMemory())
	toNormal(in)

	assert.False(t, in.Paste(true))
	assert.Equal(t, "x", in.Buffer())
}

// TestPasteClipboardFailure verifies a failed read degrades to a no-op.
func TestPasteClipboardFailure(t *testing.T) {
	in, _ := newShown("x", failingClipboard{})
	toNormal(in)

	assert.False(t, in.Paste(true))
	assert.Equal(t, "x", in.Buffer())
}

// TestYankClipboardFailure verifies a failed write leaves the editor usable.
func TestYankClipboardFailure(t *testing.T) {
	in, _ := newShown("hello", failingClipboard{})
	toNormal(in)

	in.Visual()
	in.Move(2)
	in.Yank()

	assert.Equal(t, "hello", in.Buffer())
	assert.Equal(t, OpNone, in.snap().op.Kind)
}

// ============================================================================
// Undo / redo
// ============================================================================

func TestUndoDiscardsUncommittedTyping(t *testing.T) {
	in, _ := newShown("", nil)
	for _, r := range "xyz" {
		in.Type(r)
	}

	assert.True(t, in.Undo())

	assert.Equal(t, "", in.Buffer())
	assert.Equal(t, ModeNormal, in.Mode(), "undo normalizes to Normal mode")
}

func TestUndoAtOldest(t *testing.T) {
	in, _ := newShown("hello", nil)

	assert.False(t, in.Undo())
	assert.Equal(t, "hello", in.Buffer())
}

func TestUndoRedoCycle(t *testing.T) {
	in, _ := newShown("", nil)

	in.Type('a')
	in.Escape()
	in.Insert(true)
	in.Type('b')
	in.Escape()
	assert.Equal(t, "ab", in.Buffer())

	assert.True(t, in.Undo())
	assert.Equal(t, "a", in.Buffer())

	assert.True(t, in.Redo())
	assert.Equal(t, "ab", in.Buffer())
	assert.False(t, in.Redo())
}

func TestRedoTruncatedByNewEdit(t *testing.T) {
	in, _ := newShown("", nil)

	in.Type('a')
	in.Escape()
	in.Insert(true)
	in.Type('b')
	in.Escape()

	in.Undo()
	in.Insert(true)
	in.Type('x')
	in.Escape()

	assert.Equal(t, "ax", in.Buffer())
	assert.False(t, in.Redo(), "new edit after undo drops the redone branch")
}

func TestUndoFromSelectionDropsAnchor(t *testing.T) {
	in, _ := newShown("hello", nil)
	toNormal(in)

	in.Visual()
	in.Move(3)
	require.NotNil(t, in.Selected())

	assert.True(t, in.Undo())
	assert.Nil(t, in.Selected())
	assert.Equal(t, "hello", in.Buffer())
}

func TestUndoDeleteWord(t *testing.T) {
	in, _ := newShown("hello world", nil)
	toNormal(in)

	in.Delete(false)
	in.Forward(false)
	assert.Equal(t, "world", in.Buffer())

	in.Undo()
	assert.Equal(t, "hello world", in.Buffer())

	in.Redo()
	assert.Equal(t, "world", in.Buffer())
}

// ============================================================================
// Viewport
// ============================================================================

func TestViewportFollowsCursor(t *testing.T) {
	in := New(Options{Width: 10, Margin: 2, Height: 3}, nil)
	done := make(chan Result, 1)
	in.Show(Opt{}, done)

	for _, r := range "abcdefghijkl" {
		in.Type(r)
	}

	assert.Equal(t, 5, in.snap().offset)
	assert.Equal(t, "fghijkl", in.Value(), "window shows the tail around the cursor")
	assert.Equal(t, "abcdefghijkl", in.Buffer())

	in.Move(-100)
	assert.Equal(t, 0, in.snap().offset)
	assert.Equal(t, "abcdefg", in.Value())
}

func TestViewportWideCharacters(t *testing.T) {
	in := New(Options{Width: 10, Margin: 2, Height: 3}, nil)
	done := make(chan Result, 1)
	in.Show(Opt{}, done)

	for _, r := range "日本語のテ" {
		in.Type(r)
	}

	assert.Equal(t, 2, in.snap().offset)
	assert.Equal(t, "語のテ", in.Value())
}

// ============================================================================
// Geometry queries
// ============================================================================

func TestAreaAndCursor(t *testing.T) {
	in := New(DefaultOptions(), nil)
	done := make(chan Result, 1)
	in.Show(Opt{Value: "ab", Position: Position{X: 3, Y: 5}}, done)

	area := in.Area()
	assert.Equal(t, Rect{X: 3, Y: 7, Width: 50, Height: 3}, area)

	x, y := in.Cursor()
	assert.Equal(t, 4, x)
	assert.Equal(t, 8, y)

	in.Move(2)
	x, _ = in.Cursor()
	assert.Equal(t, 6, x)
}

func TestSelectedRect(t *testing.T) {
	in := New(DefaultOptions(), nil)
	done := make(chan Result, 1)
	in.Show(Opt{Value: "hello world", Position: Position{X: 5, Y: 4}}, done)
	toNormal(in)

	assert.Nil(t, in.Selected())

	in.Visual()
	in.Move(4)

	sel := in.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, Rect{X: 6, Y: 7, Width: 4, Height: 1}, *sel, "selection excludes the cursor cell")
}

func TestSelectedRectReversed(t *testing.T) {
	in := New(DefaultOptions(), nil)
	done := make(chan Result, 1)
	in.Show(Opt{Value: "hello", Position: Position{X: 0, Y: 0}}, done)
	toNormal(in)
	in.Move(4)

	in.Visual()
	in.Move(-4)

	sel := in.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, Rect{X: 2, Y: 3, Width: 4, Height: 1}, *sel)
}

// ============================================================================
// Invariants under random key sequences
// ============================================================================

// TestInput_RandomKeys drives the full key dispatch with arbitrary sequences
// and checks the structural invariants hold after every keystroke.
func TestInput_RandomKeys(t *testing.T) {
	normalKeys := []rune("hlwebiavdcyupP0$ ")

	rapid.Check(t, func(t *rapid.T) {
		clip := clipboard.NewMemory()
		in := New(Options{
			Width:  rapid.IntRange(6, 60).Draw(t, "width"),
			Margin: 2,
			Height: 3,
		}, clip)
		done := make(chan Result, 1)
		in.Show(Opt{Value: rapid.StringMatching(`[a-z ]{0,30}`).Draw(t, "value")}, done)

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			var msg tea.Msg
			switch rapid.IntRange(0, 3).Draw(t, "kind") {
			case 0:
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case 1:
				msg = tea.KeyMsg{Type: tea.KeyBackspace}
			default:
				r := rapid.SampledFrom(normalKeys).Draw(t, "key")
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
			}
			in.Update(msg)

			snap := in.snap()
			count := snap.count()
			assert.GreaterOrEqual(t, snap.cursor, 0)
			assert.LessOrEqual(t, snap.cursor, count, "cursor never passes the end of the buffer")
			assert.GreaterOrEqual(t, snap.offset, 0)
			assert.LessOrEqual(t, snap.offset, snap.cursor, "viewport never scrolls past the cursor")
			if snap.mode == ModeNormal && count > 0 && snap.op.Kind == OpNone {
				assert.Less(t, snap.cursor, count, "Normal mode cursor rests on a character")
			}
		}
	})
}
