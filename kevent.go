package main

// Input processing engine. It contains the main event loop, which alternates
// drawing a frame with waiting for the next keyboard event, and the dispatch
// from keys to editing operations.

import (
	"fmt"
	"unicode"

	"github.com/nsf/termbox-go"
)

// HandleEvents is the central loop that waits for and processes all user
// input. It returns when the user quits.
func (e *Editor) HandleEvents(d Display) {
	for {
		// Redraw the screen before waiting for the next event.
		e.draw(d)
		ev := termbox.PollEvent()

		if ev.Type != termbox.EventKey {
			// Resizes take effect on the redraw; nothing else to do here.
			continue
		}

		// A notice lives until the key press after it was shown.
		e.notice = ""

		if e.handleKey(ev) {
			return
		}

		// A fresh save notice stays on screen until the user presses
		// another key, which is then swallowed.
		if e.saveNoticePending {
			e.saveNoticePending = false
			e.draw(d)
			termbox.PollEvent()
			e.notice = ""
		}
	}
}

// handleKey applies a single key event to the editor and reports whether the
// editor should exit.
func (e *Editor) handleKey(ev termbox.Event) bool {
	switch ev.Key {
	case termbox.KeyCtrlQ:
		return true
	case termbox.KeyCtrlC:
		// In dev mode, exit the editor with Ctrl+C.
		if e.devMode {
			return true
		}
	case termbox.KeyCtrlS:
		if err := e.buf.SaveFile(e.filename); err != nil {
			e.notice = fmt.Sprintf(" Save failed: %v", err)
			e.noticeClass = ColorError
		} else {
			e.notice = " File saved. Press any key to continue."
			e.noticeClass = ColorFooter
			e.saveNoticePending = true
		}
	case termbox.KeyArrowUp:
		e.moveCursor(0, -1)
	case termbox.KeyArrowDown:
		e.moveCursor(0, 1)
	case termbox.KeyArrowLeft:
		e.moveCursor(-1, 0)
	case termbox.KeyArrowRight:
		e.moveCursor(1, 0)
	case termbox.KeyEnter:
		e.insertNewline()
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		e.backspace()
	case termbox.KeySpace:
		// termbox reports space as a key, not a character.
		e.insertRune(' ')
	default:
		if ev.Ch != 0 && unicode.IsPrint(ev.Ch) {
			e.insertRune(ev.Ch)
		}
	}
	return false
}
