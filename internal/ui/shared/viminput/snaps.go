package viminput

// SnapshotStack is a linear undo/redo log of buffer snapshots. versions holds
// the committed history; current is the live snapshot that editing operations
// mutate in place. Tag commits the live snapshot as a new undo point, so
// full-state copies keep undo/redo trivially correct: no diffs, no shared
// mutable history.
type SnapshotStack struct {
	idx      int
	versions []Snapshot
	current  Snapshot
}

// Reset discards all history and reinitializes the stack with a single
// Insert-mode snapshot holding value.
func (s *SnapshotStack) Reset(value string) {
	snap := newSnapshot(value)
	s.idx = 0
	s.versions = s.versions[:0]
	s.versions = append(s.versions, snap)
	s.current = snap
}

// Current returns the live snapshot for read/write access.
func (s *SnapshotStack) Current() *Snapshot {
	return &s.current
}

// Tag commits the live snapshot as a new undo point, discarding any redone
// history past the live index. It is a no-op when nothing changed since the
// last commit, so callers can tag opportunistically.
func (s *SnapshotStack) Tag() bool {
	if s.current == s.versions[s.idx] {
		return false
	}
	s.versions = append(s.versions[:s.idx+1], s.current)
	s.idx++
	return true
}

// Undo moves the live snapshot one step back in history. Uncommitted edits on
// the live snapshot are discarded first (restoring the version they diverged
// from). Returns false when already at the oldest state.
func (s *SnapshotStack) Undo() bool {
	if s.current != s.versions[s.idx] {
		s.current = s.versions[s.idx]
		return true
	}
	if s.idx == 0 {
		return false
	}
	s.idx--
	s.current = s.versions[s.idx]
	return true
}

// Redo moves the live snapshot one step forward in history, if an undone
// version exists.
func (s *SnapshotStack) Redo() bool {
	if s.idx+1 >= len(s.versions) {
		return false
	}
	s.idx++
	s.current = s.versions[s.idx]
	return true
}
