package main

// Scrolling. The viewport follows the cursor along both axes with the same
// one-dimensional rule, applied once for rows and once for columns.

// reveal returns the smallest adjustment of offset that brings pos inside the
// half-open window [offset, offset+extent). A position already inside leaves
// the offset alone. One before the window scrolls back exactly to it; one
// past the window scrolls forward just far enough to make it the last
// visible position.
func reveal(pos, offset, extent int) int {
	if pos < offset {
		return pos
	}
	if pos >= offset+extent {
		return pos - extent + 1
	}
	return offset
}

// scrollToCursor moves the scroll offsets so the cursor falls inside a body
// area of the given size. Called on every draw, so the viewport also heals
// after terminal resizes.
func (e *Editor) scrollToCursor(bodyRows, bodyCols int) {
	if bodyRows > 0 {
		e.scrollY = reveal(e.cursorY, e.scrollY, bodyRows)
	}
	if bodyCols > 0 {
		e.scrollX = reveal(e.cursorX, e.scrollX, bodyCols)
	}
}
