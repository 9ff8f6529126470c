package main

// Core of the application. Manages the editor session: the buffer being
// edited, the cursor, the scroll offsets, and the editing operations the key
// handler dispatches to. Every edit keeps the cursor inside the buffer and
// re-runs the highlighter, so the screen is always consistent with the text.

// Editor is the main controller struct that holds the session state.
type Editor struct {
	buf      *Buffer // The open file's rows.
	filename string  // Path the buffer loads from and saves to.

	cursorX int // Column index (0-based).
	cursorY int // Row index (0-based).
	scrollY int // First buffer row visible in the body.
	scrollX int // First buffer column visible in the body.

	notice            string     // Status message shown on the footer line.
	noticeClass       ColorClass // How the notice is painted.
	saveNoticePending bool       // True while a save notice waits for a keypress.

	devMode bool // Internal developer mode toggle.
}

// NewEditor creates an editor session for the given file.
func NewEditor(filename string, devMode bool) *Editor {
	return &Editor{
		buf:      LoadBuffer(filename),
		filename: filename,
		devMode:  devMode,
	}
}

// moveCursor moves the cursor by one step in one direction, keeping it inside
// the buffer. Vertical moves clamp the column to the destination row.
// Horizontal moves wrap: stepping left from column zero lands at the end of
// the previous row, stepping right past the end lands at the start of the
// next.
func (e *Editor) moveCursor(dx, dy int) {
	if dy != 0 {
		newY := e.cursorY + dy
		if newY < 0 || newY >= e.buf.RowCount() {
			return
		}
		e.cursorY = newY
		if rowLen := e.buf.RowLen(e.cursorY); e.cursorX > rowLen {
			e.cursorX = rowLen
		}
		return
	}

	newX := e.cursorX + dx
	if newX < 0 {
		if e.cursorY > 0 {
			e.cursorY--
			e.cursorX = e.buf.RowLen(e.cursorY)
		}
		return
	}
	if newX > e.buf.RowLen(e.cursorY) {
		if e.cursorY < e.buf.RowCount()-1 {
			e.cursorY++
			e.cursorX = 0
		}
		return
	}
	e.cursorX = newX
}

// insertRune inserts a character at the cursor and advances it.
func (e *Editor) insertRune(ch rune) {
	e.buf.InsertChar(e.cursorY, e.cursorX, ch)
	e.cursorX++
	e.buf.Highlight()
}

// insertNewline breaks the current row at the cursor and moves the cursor to
// the start of the new row.
func (e *Editor) insertNewline() {
	e.buf.SplitRow(e.cursorY, e.cursorX)
	e.cursorY++
	e.cursorX = 0
	e.buf.Highlight()
}

// backspace deletes the character left of the cursor. At the start of a row
// it joins the row onto the previous one instead, leaving the cursor on the
// seam.
func (e *Editor) backspace() {
	if e.cursorX > 0 {
		e.buf.DeleteChar(e.cursorY, e.cursorX)
		e.cursorX--
	} else if e.cursorY > 0 {
		joinCol := e.buf.JoinRows(e.cursorY)
		e.cursorY--
		e.cursorX = joinCol
	}
	e.buf.Highlight()
}
