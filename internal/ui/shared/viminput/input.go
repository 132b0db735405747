package viminput

import (
	"context"
	"errors"

	"github.com/zjrosen/vimline/internal/log"
)

// ErrCanceled is delivered on the completion channel when the input is
// dismissed without submitting.
var ErrCanceled = errors.New("input canceled")

// Result is the one-shot outcome of a Show/Close cycle: the submitted value,
// or ErrCanceled when the user aborted.
type Result struct {
	Value string
	Err   error
}

// Clipboard is the external clipboard collaborator. Implementations live in
// internal/clipboard; failures are expected to degrade rather than propagate
// (a failed read acts as an empty clipboard, a failed write is best-effort).
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// Position is an anchor coordinate for rendering, in screen cells.
type Position struct {
	X int
	Y int
}

// Rect is a screen-space rectangle used by the geometry queries.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// headerOffset is the vertical distance between the anchor position and the
// input frame, leaving room for whatever the host renders above it.
const headerOffset = 2

// Options configures the input geometry. The viewport math keeps the cursor
// inside Width minus Margin columns.
type Options struct {
	// Width is the total frame width in display columns.
	Width int
	// Margin is the number of columns reserved at the right edge of the
	// viewport so the cursor never touches the border.
	Margin int
	// Height is the total frame height in rows (border rows included).
	Height int
}

// DefaultOptions returns the stock 50x3 frame with a 2-column margin.
func DefaultOptions() Options {
	return Options{Width: 50, Margin: 2, Height: 3}
}

// Opt describes one Show request.
type Opt struct {
	Title    string
	Value    string
	Position Position
}

// Input is a modal single-line editor. All methods execute synchronously on
// the UI goroutine and report whether anything changed, so hosts can decide
// whether a re-render is needed. Nothing here is fatal: invalid motions and
// empty-clipboard pastes are no-ops, and every failure path leaves the input
// in a consistent, previously valid state.
type Input struct {
	snaps SnapshotStack

	opts Options
	clip Clipboard

	title    string
	position Position
	visible  bool
	done     chan<- Result
}

// New creates an Input with the given geometry and clipboard collaborator.
// A nil clipboard falls back to a no-op implementation.
func New(opts Options, clip Clipboard) *Input {
	if opts.Width <= 0 {
		opts = DefaultOptions()
	}
	if clip == nil {
		clip = nopClipboard{}
	}
	in := &Input{opts: opts, clip: clip}
	in.snaps.Reset("")
	return in
}

// nopClipboard discards writes and reads back nothing.
type nopClipboard struct{}

func (nopClipboard) ReadText(context.Context) (string, error) { return "", nil }
func (nopClipboard) WriteText(context.Context, string) error  { return nil }

// Show arms the input: history is reset to the initial value, the widget
// becomes visible, and exactly one Result will eventually be sent on done.
// Any previously armed request is implicitly canceled first. The channel
// should be buffered (cap 1) so delivery never blocks the UI goroutine.
func (in *Input) Show(opt Opt, done chan<- Result) {
	in.Close(false)
	in.snaps.Reset(opt.Value)

	in.title = opt.Title
	in.position = opt.Position
	in.done = done
	in.visible = true
	log.Debug(log.CatInput, "input shown", "title", opt.Title)
}

// Close resolves the pending request: with submit it delivers the current
// value, otherwise a cancellation error. The completion channel is fire-once;
// closing an already closed input only hides it.
func (in *Input) Close(submit bool) bool {
	if in.done != nil {
		res := Result{Err: ErrCanceled}
		if submit {
			res = Result{Value: in.snap().value}
		}
		select {
		case in.done <- res:
		default:
			log.Warn(log.CatInput, "completion channel full, result dropped", "submit", submit)
		}
		in.done = nil
	}
	in.visible = false
	return true
}

// Escape leaves Insert mode (shifting the cursor one left, since in Normal
// mode the cursor rests on a character rather than between characters), or in
// Normal mode cancels any pending operator and anchor. Either way the current
// state is committed as an undo point.
func (in *Input) Escape() bool {
	snap := in.snap()
	switch snap.mode {
	case ModeNormal:
		snap.op = Op{}
		snap.start = noAnchor
	case ModeInsert:
		snap.mode = ModeNormal
		in.Move(-1)
	}
	in.snaps.Tag()
	return true
}

// Insert switches from Normal to Insert mode. It fails while an operator is
// pending. With appendAfter the cursor advances one position first, so typing
// continues after the character under the cursor.
func (in *Input) Insert(appendAfter bool) bool {
	if !in.snap().enterInsert() {
		return false
	}
	if appendAfter {
		in.Move(1)
	}
	return true
}

// Visual marks the cursor as the selection anchor, staying in Normal mode.
// The anchor pairs with the cursor to delimit the range a following Delete or
// Yank applies to. The pre-selection state is committed first, so the anchor
// itself stays uncommitted and an Undo from inside a selection simply drops it.
func (in *Input) Visual() bool {
	snap := in.snap()
	snap.op = Op{}
	in.snaps.Tag()
	return snap.anchor()
}

// Undo steps history back one snapshot and normalizes to Normal mode.
// Returns false at the oldest state.
func (in *Input) Undo() bool {
	if !in.snaps.Undo() {
		return false
	}
	in.Escape()
	return true
}

// Redo steps history forward one snapshot, if an undone version exists.
func (in *Input) Redo() bool {
	return in.snaps.Redo()
}

// Move shifts the cursor by step grapheme clusters (clamped to the buffer),
// resolving any pending operator against the target position, and then
// recomputes the viewport offset so the cursor stays visible.
func (in *Input) Move(step int) bool {
	snap := in.snap()
	var target int
	if step <= 0 {
		target = snap.cursor + step
		if target < 0 {
			target = 0
		}
	} else {
		target = snap.cursor + step
		if n := snap.count(); target > n {
			target = n
		}
	}
	changed := in.handleOp(target, false)

	in.scrollToCursor()
	return changed
}

// MoveInOperating is Move gated on a pending operator; without one it is
// rejected. Hosts bind it to motions that only make sense as operator ranges.
func (in *Input) MoveInOperating(step int) bool {
	if in.snap().op.Kind == OpNone {
		return false
	}
	return in.Move(step)
}

// scrollToCursor recomputes the viewport offset after a cursor change: snap
// left when the cursor fell off the left edge, otherwise scan backward from
// the cursor for the smallest window that fits the viewport width.
func (in *Input) scrollToCursor() {
	snap := in.snap()
	limit := in.opts.Width - in.opts.Margin

	switch {
	case snap.cursor < snap.offset:
		snap.offset = snap.cursor
	case snap.value == "":
		snap.offset = 0
	default:
		delta := snap.mode.delta()
		cs := graphemes(snap.value)
		hi := snap.cursor + delta
		if hi > len(cs) {
			hi = len(cs)
		}
		if displayWidth(joinClusters(cs[snap.offset:hi])) >= limit {
			fit := fitClusters(reverseClusters(cs[snap.offset:hi]), limit)
			if fit -= delta; fit < 0 {
				fit = 0
			}
			snap.offset = snap.cursor - fit
		}
	}
}

// Backward moves the cursor to the start of the current or previous word,
// scanning past the current run and any space before it.
func (in *Input) Backward() bool {
	snap := in.snap()
	if snap.cursor == 0 {
		return in.Move(0)
	}

	cs := graphemes(snap.value)
	n := snap.cursor
	if n > len(cs) {
		n = len(cs)
	}
	left := reverseClusters(cs[:n])
	prev := kindOf(left[0])
	for i := 1; i < len(left); i++ {
		k := kindOf(left[i])
		if prev != kindSpace && prev != k {
			return in.Move(-i)
		}
		prev = k
	}

	if prev != kindSpace {
		return in.Move(-snap.count())
	}
	return false
}

// Forward moves the cursor to the next word. With end it targets the last
// character of the current or next run (vim's "e"); otherwise the first
// character of the next run (vim's "w"). While an operator is pending the
// motion includes the boundary character, making the operator range inclusive.
func (in *Input) Forward(end bool) bool {
	snap := in.snap()
	if snap.value == "" {
		return in.Move(0)
	}

	cs := graphemes(snap.value)
	if snap.cursor >= len(cs) {
		return in.Move(snap.count())
	}
	rest := cs[snap.cursor:]
	prev := kindOf(rest[0])
	for i := 1; i < len(rest); i++ {
		k := kindOf(rest[i])
		var hit bool
		if end {
			hit = prev != kindSpace && prev != k && i != 1
		} else {
			hit = k != kindSpace && k != prev
		}
		switch {
		case hit && snap.op.Kind != OpNone:
			return in.Move(i)
		case hit && end:
			return in.Move(i - 1)
		case hit:
			return in.Move(i)
		}
		prev = k
	}

	return in.Move(snap.count())
}

// Type inserts r at the cursor and advances one position.
func (in *Input) Type(r rune) bool {
	snap := in.snap()
	switch {
	case snap.cursor < 1:
		snap.value = string(r) + snap.value
	case snap.cursor >= snap.count():
		snap.value += string(r)
	default:
		i := byteIndex(snap.value, snap.cursor)
		snap.value = snap.value[:i] + string(r) + snap.value[i:]
	}
	return in.Move(1)
}

// Backspace removes the grapheme cluster before the cursor. No-op at the
// start of the buffer. Removing the trailing cluster is a plain truncation;
// mid-string removal resolves the cluster's byte range first.
func (in *Input) Backspace() bool {
	snap := in.snap()
	if snap.cursor < 1 {
		return false
	}
	if n := snap.count(); snap.cursor >= n {
		snap.value = snap.slice(0, n-1)
	} else {
		lo := byteIndex(snap.value, snap.cursor-1)
		hi := byteIndex(snap.value, snap.cursor)
		snap.value = snap.value[:lo] + snap.value[hi:]
	}
	return in.Move(-1)
}

// Delete drives the delete operator. With an existing anchor it applies
// immediately over anchor..cursor (inclusive). With no operator pending it
// arms one at the cursor, awaiting a motion. Invoked again while a delete is
// already pending it clears the whole buffer (vim's "dd" collapsed to a
// single line). reenterInsert selects the mode entered after the deletion.
func (in *Input) Delete(reenterInsert bool) bool {
	snap := in.snap()
	switch snap.op.Kind {
	case OpNone:
		if snap.start != noAnchor {
			snap.op = Op{Kind: OpDelete, ReenterInsert: reenterInsert}
			if in.handleOp(snap.cursor, true) {
				in.Move(0)
				return true
			}
			return false
		}
		snap.op = Op{Kind: OpDelete, ReenterInsert: reenterInsert}
		snap.start = snap.cursor
		return false
	case OpDelete:
		snap.value = ""
		snap.cursor = 0
		snap.offset = 0
		snap.op = Op{}
		snap.start = noAnchor
		if reenterInsert {
			snap.mode = ModeInsert
		} else {
			snap.mode = ModeNormal
		}
		in.snaps.Tag()
		return true
	default:
		return false
	}
}

// Yank drives the yank operator, mirroring Delete: apply over an existing
// anchor, or arm at the cursor. Invoked again while a yank is already pending
// it copies the entire buffer ("yy"): the anchor jumps to 0 and the cursor
// motion to the end resolves the pending operator over the whole value. No
// undo point is recorded since the text is unchanged.
func (in *Input) Yank() bool {
	snap := in.snap()
	switch snap.op.Kind {
	case OpNone:
		if snap.start != noAnchor {
			snap.op = Op{Kind: OpYank}
			if in.handleOp(snap.cursor, true) {
				in.Move(0)
				return true
			}
			return false
		}
		snap.op = Op{Kind: OpYank}
		snap.start = snap.cursor
		return false
	case OpYank:
		snap.start = 0
		in.Move(snap.count())
		return false
	default:
		return false
	}
}

// Paste inserts the clipboard text at the cursor (before or after, per vim's
// P/p). An active selection is replaced: it is deleted first via the delete
// operator. An empty or failed clipboard read is a no-op. The insertion runs
// through Type so viewport and undo behavior match manual typing, and the
// final Escape commits one undo point for the whole paste.
func (in *Input) Paste(before bool) bool {
	snap := in.snap()
	if snap.start != noAnchor {
		snap.op = Op{Kind: OpDelete}
		in.handleOp(snap.cursor, true)
	}

	text, err := in.clip.ReadText(context.Background())
	if err != nil {
		log.ErrorErr(log.CatClipboard, "clipboard read failed, treating as empty", err)
		text = ""
	}
	if text == "" {
		return false
	}

	in.Insert(!before)
	for _, r := range text {
		in.Type(r)
	}
	in.Escape()
	return true
}

// handleOp resolves the pending operator against a target cursor. With no
// operator this degenerates to a plain cursor set. Deletes remove the
// anchor..target range and switch mode per the operator; yanks copy it to the
// clipboard best-effort. The operator and anchor are consumed either way, the
// cursor is re-clamped for the resulting mode, and an undo point is recorded
// only when an operator actually mutated the text.
func (in *Input) handleOp(cursor int, include bool) bool {
	snap := in.snap()
	old := *snap

	switch snap.op.Kind {
	case OpNone:
		snap.cursor = cursor
	case OpDelete:
		if lo, hi, ok := snap.opRange(cursor, include); ok {
			snap.value = snap.slice(0, lo) + snap.slice(hi, snap.count())
			if snap.op.ReenterInsert {
				snap.mode = ModeInsert
			} else {
				snap.mode = ModeNormal
			}
			snap.cursor = lo
		}
		snap.op = Op{}
		snap.start = noAnchor
	case OpYank:
		if lo, hi, ok := snap.opRange(cursor, include); ok {
			if err := in.clip.WriteText(context.Background(), snap.slice(lo, hi)); err != nil {
				log.ErrorErr(log.CatClipboard, "clipboard write failed", err)
			}
		}
		snap.op = Op{}
		snap.start = noAnchor
	}

	if upper := snap.count() - snap.mode.delta(); upper < 0 {
		snap.cursor = 0
	} else if snap.cursor > upper {
		snap.cursor = upper
	}

	if *snap == old {
		return false
	}
	if old.op.Kind != OpNone && snap.value != old.value {
		in.snaps.Tag()
	}
	return true
}

func (in *Input) snap() *Snapshot {
	return in.snaps.Current()
}
