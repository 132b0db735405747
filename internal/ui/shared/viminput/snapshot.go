package viminput

// noAnchor marks an unset selection anchor.
const noAnchor = -1

// Snapshot is one versioned state of the input buffer: the text plus every
// piece of editing state that undo/redo must restore together.
type Snapshot struct {
	value  string
	cursor int // grapheme index, 0..=count
	offset int // grapheme index of the first visible cluster
	mode   Mode
	op     Op
	start  int // selection/motion anchor, noAnchor when unset
}

// newSnapshot returns an Insert-mode snapshot holding value, with the cursor
// and viewport at the origin.
func newSnapshot(value string) Snapshot {
	return Snapshot{value: value, mode: ModeInsert, start: noAnchor}
}

// count returns the number of grapheme clusters in the buffer.
func (s *Snapshot) count() int {
	return graphemeCount(s.value)
}

// slice returns the text covering grapheme clusters [lo, hi).
func (s *Snapshot) slice(lo, hi int) string {
	return sliceGraphemes(s.value, lo, hi)
}

// window returns the visible grapheme range [offset, end) whose rendered
// width fits strictly under limit columns.
func (s *Snapshot) window(limit int) (lo, hi int) {
	cs := graphemes(s.value)
	if s.offset >= len(cs) {
		return s.offset, s.offset
	}
	return s.offset, s.offset + fitClusters(cs[s.offset:], limit)
}

// enterInsert flips the snapshot into Insert mode. It fails when an operator
// is pending (the operator must be resolved or cancelled first) or when the
// snapshot is already in Insert mode.
func (s *Snapshot) enterInsert() bool {
	if s.op.Kind != OpNone || s.mode == ModeInsert {
		return false
	}
	s.mode = ModeInsert
	return true
}

// anchor marks the cursor as the selection anchor. Only meaningful in Normal
// mode on a non-empty buffer.
func (s *Snapshot) anchor() bool {
	if s.mode != ModeNormal || s.value == "" {
		return false
	}
	s.start = s.cursor
	return true
}

// opRange resolves the pending operator's range between the anchor and the
// given target cursor. The include flag widens the range by one cluster so
// inclusive motions cover the boundary character. Returns ok=false when no
// anchor is set.
func (s *Snapshot) opRange(cursor int, include bool) (lo, hi int, ok bool) {
	if s.start == noAnchor {
		return 0, 0, false
	}
	lo, hi = s.start, cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	if include {
		hi++
	}
	if n := s.count(); hi > n {
		hi = n
	}
	return lo, hi, true
}
