package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nsf/termbox-go"
)

func keyEvent(key termbox.Key) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Key: key}
}

func chEvent(ch rune) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Ch: ch}
}

func TestMoveCursorVertical(t *testing.T) {
	e := newTestEditor("hello", "hi", "world")
	e.cursorX, e.cursorY = 4, 0

	// Moving onto a shorter row pulls the cursor back inside it.
	e.moveCursor(0, 1)
	if e.cursorX != 2 || e.cursorY != 1 {
		t.Fatalf("cursor=(%d,%d), want (2,1)", e.cursorX, e.cursorY)
	}

	e.moveCursor(0, 1)
	if e.cursorX != 2 || e.cursorY != 2 {
		t.Fatalf("cursor=(%d,%d), want (2,2)", e.cursorX, e.cursorY)
	}

	// The buffer edge stops the cursor.
	e.moveCursor(0, 1)
	if e.cursorY != 2 {
		t.Fatalf("cursorY=%d, want 2", e.cursorY)
	}

	e.moveCursor(0, -1)
	e.moveCursor(0, -1)
	e.moveCursor(0, -1)
	if e.cursorY != 0 {
		t.Fatalf("cursorY=%d, want 0", e.cursorY)
	}
}

func TestMoveCursorWrapsAtRowEnds(t *testing.T) {
	e := newTestEditor("ab", "cd")
	e.cursorX, e.cursorY = 0, 1

	// Stepping left from column zero lands at the end of the previous row.
	e.moveCursor(-1, 0)
	if e.cursorX != 2 || e.cursorY != 0 {
		t.Fatalf("cursor=(%d,%d), want (2,0)", e.cursorX, e.cursorY)
	}

	// Stepping right past the end lands at the start of the next row.
	e.moveCursor(1, 0)
	if e.cursorX != 0 || e.cursorY != 1 {
		t.Fatalf("cursor=(%d,%d), want (0,1)", e.cursorX, e.cursorY)
	}
}

func TestMoveCursorStopsAtBufferEdges(t *testing.T) {
	e := newTestEditor("ab")

	e.moveCursor(-1, 0)
	if e.cursorX != 0 || e.cursorY != 0 {
		t.Fatalf("cursor=(%d,%d), want (0,0)", e.cursorX, e.cursorY)
	}

	e.cursorX = 2
	e.moveCursor(1, 0)
	if e.cursorX != 2 || e.cursorY != 0 {
		t.Fatalf("cursor=(%d,%d), want (2,0)", e.cursorX, e.cursorY)
	}
}

func TestHandleKeyInsertsCharacter(t *testing.T) {
	e := newTestEditor("ac")
	e.cursorX = 1

	quit := e.handleKey(chEvent('b'))

	if quit {
		t.Fatal("handleKey()=true, want false")
	}
	if got, want := e.buf.Text(), "abc"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	if e.cursorX != 2 {
		t.Fatalf("cursorX=%d, want 2", e.cursorX)
	}
}

func TestHandleKeyInsertsSpace(t *testing.T) {
	e := newTestEditor("ab")
	e.cursorX = 1

	e.handleKey(keyEvent(termbox.KeySpace))

	if got, want := e.buf.Text(), "a b"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}

func TestHandleKeyIgnoresUnprintable(t *testing.T) {
	e := newTestEditor("ab")

	e.handleKey(keyEvent(termbox.KeyEsc))
	e.handleKey(keyEvent(termbox.KeyTab))

	if got, want := e.buf.Text(), "ab"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}

func TestHandleKeyEnterSplitsRow(t *testing.T) {
	e := newTestEditor("ab")
	e.cursorX = 2

	e.handleKey(keyEvent(termbox.KeyEnter))

	if got, want := e.buf.RowCount(), 2; got != want {
		t.Fatalf("RowCount()=%d, want %d", got, want)
	}
	if got, want := e.buf.RowText(0), "ab"; got != want {
		t.Fatalf("RowText(0)=%q, want %q", got, want)
	}
	if got, want := e.buf.RowText(1), ""; got != want {
		t.Fatalf("RowText(1)=%q, want %q", got, want)
	}
	if e.cursorX != 0 || e.cursorY != 1 {
		t.Fatalf("cursor=(%d,%d), want (0,1)", e.cursorX, e.cursorY)
	}
}

func TestHandleKeyBackspaceDeletes(t *testing.T) {
	e := newTestEditor("abc")
	e.cursorX = 2

	e.handleKey(keyEvent(termbox.KeyBackspace2))

	if got, want := e.buf.Text(), "ac"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	if e.cursorX != 1 {
		t.Fatalf("cursorX=%d, want 1", e.cursorX)
	}
}

func TestHandleKeyBackspaceJoinsRows(t *testing.T) {
	e := newTestEditor("ab", "cd")
	e.cursorY = 1

	e.handleKey(keyEvent(termbox.KeyBackspace))

	if got, want := e.buf.Text(), "abcd"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	// The cursor sits on the seam between the joined rows.
	if e.cursorX != 2 || e.cursorY != 0 {
		t.Fatalf("cursor=(%d,%d), want (2,0)", e.cursorX, e.cursorY)
	}
}

func TestHandleKeyBackspaceAtBufferStart(t *testing.T) {
	e := newTestEditor("ab")

	e.handleKey(keyEvent(termbox.KeyBackspace2))

	if got, want := e.buf.Text(), "ab"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}

func TestHandleKeyArrows(t *testing.T) {
	e := newTestEditor("hello", "world")

	e.handleKey(keyEvent(termbox.KeyArrowRight))
	e.handleKey(keyEvent(termbox.KeyArrowDown))
	if e.cursorX != 1 || e.cursorY != 1 {
		t.Fatalf("cursor=(%d,%d), want (1,1)", e.cursorX, e.cursorY)
	}

	e.handleKey(keyEvent(termbox.KeyArrowLeft))
	e.handleKey(keyEvent(termbox.KeyArrowUp))
	if e.cursorX != 0 || e.cursorY != 0 {
		t.Fatalf("cursor=(%d,%d), want (0,0)", e.cursorX, e.cursorY)
	}
}

func TestHandleKeyQuit(t *testing.T) {
	e := newTestEditor("ab")

	if !e.handleKey(keyEvent(termbox.KeyCtrlQ)) {
		t.Fatal("handleKey(Ctrl-Q)=false, want true")
	}
}

func TestHandleKeyCtrlC(t *testing.T) {
	e := newTestEditor("ab")

	if e.handleKey(keyEvent(termbox.KeyCtrlC)) {
		t.Fatal("handleKey(Ctrl-C)=true outside dev mode, want false")
	}

	e.devMode = true
	if !e.handleKey(keyEvent(termbox.KeyCtrlC)) {
		t.Fatal("handleKey(Ctrl-C)=false in dev mode, want true")
	}
}

func TestHandleKeySave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	e := newTestEditor("hello", "world")
	e.filename = path

	e.handleKey(keyEvent(termbox.KeyCtrlS))

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(content), "hello\nworld\n"; got != want {
		t.Fatalf("file content=%q, want %q", got, want)
	}
	if !strings.Contains(e.notice, "File saved") {
		t.Fatalf("notice=%q, want save confirmation", e.notice)
	}
	if !e.saveNoticePending {
		t.Fatal("saveNoticePending=false, want true")
	}
}

func TestHandleKeySaveFailure(t *testing.T) {
	e := newTestEditor("hello")
	e.filename = filepath.Join(t.TempDir(), "missing-dir", "out.txt")

	e.handleKey(keyEvent(termbox.KeyCtrlS))

	if !strings.Contains(e.notice, "Save failed") {
		t.Fatalf("notice=%q, want save failure", e.notice)
	}
	if got, want := e.noticeClass, ColorError; got != want {
		t.Fatalf("noticeClass=%v, want %v", got, want)
	}
	// A failed save must not block waiting for a keypress.
	if e.saveNoticePending {
		t.Fatal("saveNoticePending=true, want false")
	}
}

func TestNewEditorLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewEditor(path, false)

	if got, want := e.buf.RowCount(), 2; got != want {
		t.Fatalf("RowCount()=%d, want %d", got, want)
	}
	if e.cursorX != 0 || e.cursorY != 0 {
		t.Fatalf("cursor=(%d,%d), want (0,0)", e.cursorX, e.cursorY)
	}
}
