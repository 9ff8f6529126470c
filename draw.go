package main

// Rendering. Each frame is painted from scratch: scroll offsets are settled
// first, then the header bar, the visible slice of the buffer, the footer
// bar, and the cursor. The renderer only reads the buffer; every cell already
// carries its color class.

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// footerText is the idle footer content, shown when no notice is pending.
const footerText = " tedit  -  Ctrl-S save  -  Ctrl-Q quit"

// drawBar paints one full-width chrome line. The text is truncated to the
// screen width and the remainder padded with blanks, so a bar always covers
// whatever was on its line before.
func drawBar(d Display, y, width int, text string, class ColorClass) {
	fg, bg := GetThemeColor(class)

	x := 0
	for _, ch := range runewidth.Truncate(text, width, "") {
		d.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < width; x++ {
		d.SetCell(x, y, ' ', fg, bg)
	}
}

// draw renders one frame of the editor to the display.
func (e *Editor) draw(d Display) {
	width, height := d.Size()

	bodyFg, bodyBg := GetThemeColor(ColorBody)
	d.Clear(bodyFg, bodyBg)

	// Header and footer take one line each; the body gets the rest.
	bodyRows := height - 2
	e.scrollToCursor(bodyRows, width)

	drawBar(d, 0, width, fmt.Sprintf(" File: %s", e.filename), ColorHeader)

	for screenY := 0; screenY < bodyRows; screenY++ {
		bufferY := screenY + e.scrollY
		if bufferY >= e.buf.RowCount() {
			break
		}

		row := e.buf.rows[bufferY]
		for x := 0; x < width; x++ {
			bufferX := x + e.scrollX
			if bufferX >= row.Len() {
				break
			}

			cell := row.cells[bufferX]
			ch := cell.Ch
			if ch == '\t' {
				// Tabs only arrive from loaded files. Render them one
				// column wide so screen and buffer columns stay aligned.
				ch = ' '
			}

			fg, bg := GetThemeColor(cell.Class)
			d.SetCell(x, screenY+1, ch, fg, bg)
		}
	}

	if e.notice != "" {
		drawBar(d, height-1, width, e.notice, e.noticeClass)
	} else {
		drawBar(d, height-1, width, footerText, ColorFooter)
	}

	d.SetCursor(e.cursorX-e.scrollX, e.cursorY-e.scrollY+1)
	d.Flush()
}
