package logic

// Navigator owns the cursor position and scroll offset over the
// filtered view. It is the only place allowed to write Offset, which
// keeps the scroll behavior minimal: the viewport never jumps further
// than needed to reveal the cursor.
type Navigator struct {
	Cursor int
	Offset int
	Height int // viewport height in rows, recomputed each frame
}

// NewNavigator creates a navigator with a sane default height until
// the first WindowSizeMsg arrives.
func NewNavigator() *Navigator {
	return &Navigator{Height: 20}
}

// SetHeight updates the viewport height and reclamps against the
// current list length. Height never drops below one row.
func (n *Navigator) SetHeight(h, listLen int) {
	if h < 1 {
		h = 1
	}
	n.Height = h
	n.Clamp(listLen)
}

// Move shifts the cursor by delta and reclamps. Movement past either
// end of the list stops at the boundary.
func (n *Navigator) Move(delta, listLen int) {
	n.Cursor += delta
	n.Clamp(listLen)
}

// PageDelta returns the cursor delta for a page movement. One row less
// than the viewport height so consecutive pages overlap by a row.
func (n *Navigator) PageDelta() int {
	d := n.Height - 1
	if d < 1 {
		d = 1
	}
	return d
}

// Reset returns the viewport to the top of the list. Used when a new
// filter query is submitted.
func (n *Navigator) Reset() {
	n.Cursor = 0
	n.Offset = 0
}

// Clamp restores the viewport invariant after any cursor movement,
// list replacement, or height change:
//
//	0 <= Cursor < listLen   (Cursor == 0 when the list is empty)
//	Offset <= Cursor < Offset + Height
//
// The order matters: cursor first, then scroll up, then scroll down.
func (n *Navigator) Clamp(listLen int) {
	if n.Cursor < 0 {
		n.Cursor = 0
	}
	if n.Cursor >= listLen {
		n.Cursor = listLen - 1
		if n.Cursor < 0 {
			n.Cursor = 0
		}
	}
	if n.Cursor < n.Offset {
		n.Offset = n.Cursor
	} else if n.Cursor >= n.Offset+n.Height {
		n.Offset = n.Cursor - n.Height + 1
	}
}
