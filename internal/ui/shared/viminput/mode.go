// Package viminput provides a modal single-line input component for Bubble Tea
// applications. It supports vim-style motions (word forward/back, visual
// selection), delete/yank/paste operators backed by the system clipboard,
// snapshot-based multi-level undo/redo, and viewport scrolling for a
// fixed-width display window.
package viminput

// Mode represents the current editing mode.
type Mode int

const (
	// ModeInsert is the mode for typing text. It is the default: a freshly
	// shown input starts in Insert so the user can type immediately.
	ModeInsert Mode = iota
	// ModeNormal is the vim command mode for motions and operators.
	ModeNormal
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// delta returns the cursor upper-bound adjustment for the mode. In Normal
// mode the cursor rests on a character, so the rightmost valid position is
// count-1; in Insert mode it sits between characters and may reach count.
func (m Mode) delta() int {
	if m == ModeInsert {
		return 0
	}
	return 1
}

// OpKind identifies a pending operator awaiting a motion to delimit its range.
type OpKind int

const (
	// OpNone means no operator is pending.
	OpNone OpKind = iota
	// OpDelete removes the delimited range from the buffer.
	OpDelete
	// OpYank copies the delimited range to the clipboard.
	OpYank
)

// Op is a pending operator. ReenterInsert is only meaningful for OpDelete:
// when true the buffer drops into Insert mode after the range is removed
// (vim's "change" behavior), otherwise it stays in Normal mode.
type Op struct {
	Kind          OpKind
	ReenterInsert bool
}
