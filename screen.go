package main

// Display abstracts the terminal surface the renderer paints on. The real
// implementation forwards to termbox; tests substitute an in-memory grid and
// assert on the cells the renderer produced.

import "github.com/nsf/termbox-go"

// Display is the surface the renderer draws on.
type Display interface {
	// Size returns the surface dimensions in columns and rows.
	Size() (int, int)
	// Clear fills the surface with blanks in the given attributes.
	Clear(fg, bg termbox.Attribute)
	// SetCell paints one character cell.
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	// SetCursor places the hardware cursor.
	SetCursor(x, y int)
	// Flush makes the drawn frame visible.
	Flush()
}

// Screen is the termbox-backed Display.
type Screen struct{}

func (Screen) Size() (int, int) {
	return termbox.Size()
}

func (Screen) Clear(fg, bg termbox.Attribute) {
	termbox.Clear(fg, bg)
}

func (Screen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (Screen) SetCursor(x, y int) {
	termbox.SetCursor(x, y)
}

func (Screen) Flush() {
	termbox.Flush()
}
