package viminput

// Title returns the display label set by the last Show.
func (in *Input) Title() string {
	return in.title
}

// Visible reports whether the input is currently shown.
func (in *Input) Visible() bool {
	return in.visible
}

// Mode returns the current editing mode.
func (in *Input) Mode() Mode {
	return in.snap().mode
}

// Value returns the currently visible windowed slice of the buffer, not the
// full text. Use Buffer for the complete value.
func (in *Input) Value() string {
	snap := in.snap()
	lo, hi := snap.window(in.opts.Width - in.opts.Margin)
	return snap.slice(lo, hi)
}

// Buffer returns the full text content.
func (in *Input) Buffer() string {
	return in.snap().value
}

// Area returns the frame rectangle, anchored at the Show position and offset
// below it by the header height.
func (in *Input) Area() Rect {
	return Rect{
		X:      in.position.X,
		Y:      in.position.Y + headerOffset,
		Width:  in.opts.Width,
		Height: in.opts.Height,
	}
}

// Cursor returns the absolute screen coordinates of the cursor cell, derived
// from the display width of the text between the viewport offset and the
// cursor, inset by the frame border.
func (in *Input) Cursor() (x, y int) {
	snap := in.snap()
	width := displayWidth(snap.slice(snap.offset, snap.cursor))

	area := in.Area()
	return area.X + width + 1, area.Y + 1
}

// Selected returns the rectangle covering the visible portion of the current
// anchor-to-cursor selection, clipped to the viewport window, or nil when no
// anchor is set.
func (in *Input) Selected() *Rect {
	snap := in.snap()
	if snap.start == noAnchor {
		return nil
	}

	// The cursor cell renders with its own highlight, so the selection
	// rectangle covers the anchor side exclusive of the cursor position.
	lo, hi := snap.start, snap.cursor
	if lo >= hi {
		lo, hi = hi+1, lo+1
	}

	wlo, whi := snap.window(in.opts.Width - in.opts.Margin)
	if lo < wlo {
		lo = wlo
	}
	if hi > whi {
		hi = whi
	}
	if hi < lo {
		hi = lo
	}

	return &Rect{
		X:      in.position.X + 1 + displayWidth(snap.slice(snap.offset, lo)),
		Y:      in.position.Y + headerOffset + 1,
		Width:  displayWidth(snap.slice(lo, hi)),
		Height: 1,
	}
}
