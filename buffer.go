package main

// Data structures and methods for managing the text buffer: rows of character
// cells, loading from and saving to disk, and the editing primitives the
// controller builds on. Each cell pairs a rune with its color class, so text
// and highlighting can never drift apart structurally.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Cell is a single character in the buffer together with its color class.
type Cell struct {
	Ch    rune       // The character itself.
	Class ColorClass // How the renderer should paint it.
}

// Row is one line of text as a sequence of cells.
type Row struct {
	cells []Cell
}

// newRow builds a row from a string, with every cell classed as plain body
// text. Callers re-run the highlighter when the classes matter.
func newRow(text string) *Row {
	r := &Row{cells: make([]Cell, 0, len(text))}
	for _, ch := range text {
		r.cells = append(r.cells, Cell{Ch: ch, Class: ColorBody})
	}
	return r
}

// Len returns the number of cells in the row.
func (r *Row) Len() int {
	return len(r.cells)
}

// Text returns the row's characters as a string, without color information.
func (r *Row) Text() string {
	var sb strings.Builder
	for _, c := range r.cells {
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

// Classes returns the color class of every cell in the row, in order.
func (r *Row) Classes() []ColorClass {
	classes := make([]ColorClass, len(r.cells))
	for i, c := range r.cells {
		classes[i] = c.Class
	}
	return classes
}

// InsertChar inserts a character at the given column, shifting the rest of the
// row right. Columns outside the row are clamped, so inserting "past the end"
// appends. The new cell borrows the class of its left neighbor (body class at
// column zero) as a placeholder until the next highlight pass.
func (r *Row) InsertChar(col int, ch rune) {
	if col < 0 {
		col = 0
	}
	if col > len(r.cells) {
		col = len(r.cells)
	}

	class := ColorBody
	if col > 0 {
		class = r.cells[col-1].Class
	}

	r.cells = append(r.cells, Cell{})
	copy(r.cells[col+1:], r.cells[col:])
	r.cells[col] = Cell{Ch: ch, Class: class}
}

// DeleteChar removes the character left of the given column, shifting the rest
// of the row left. A column at or before the start of the row, or past its
// end, deletes nothing.
func (r *Row) DeleteChar(col int) {
	if col <= 0 || col > len(r.cells) {
		return
	}
	r.cells = append(r.cells[:col-1], r.cells[col:]...)
}

// Split truncates the row at the given column and returns a new row holding
// everything from that column on. Columns outside the row are clamped.
func (r *Row) Split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col > len(r.cells) {
		col = len(r.cells)
	}

	rest := &Row{cells: make([]Cell, len(r.cells)-col)}
	copy(rest.cells, r.cells[col:])
	r.cells = r.cells[:col]
	return rest
}

// Join appends the cells of another row to this one.
func (r *Row) Join(other *Row) {
	r.cells = append(r.cells, other.cells...)
}

// Buffer holds the rows of an open file. A buffer always has at least one row,
// even when the file is empty or missing.
type Buffer struct {
	rows []*Row
}

// NewBuffer returns a buffer with a single empty row.
func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{newRow("")}}
}

// LoadBuffer reads a file into a new buffer, one row per line, and highlights
// it. A file that cannot be opened (most commonly because it does not exist
// yet) yields an empty buffer, so editing a new name just works.
func LoadBuffer(filename string) *Buffer {
	file, err := os.Open(filename)
	if err != nil {
		return NewBuffer()
	}
	defer file.Close()

	b := &Buffer{}
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			break
		}
		if err == io.EOF && line == "" {
			break
		}
		b.rows = append(b.rows, newRow(strings.TrimSuffix(line, "\n")))
		if err == io.EOF {
			break
		}
	}

	if len(b.rows) == 0 {
		b.rows = []*Row{newRow("")}
	}

	b.Highlight()
	return b
}

// SaveFile writes the buffer to disk, one line per row with a trailing
// newline on every line.
func (b *Buffer) SaveFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, row := range b.rows {
		if _, err := writer.WriteString(row.Text() + "\n"); err != nil {
			return fmt.Errorf("failed to write file: %v", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}
	return nil
}

// RowCount returns the number of rows in the buffer.
func (b *Buffer) RowCount() int {
	return len(b.rows)
}

// RowLen returns the number of cells in the given row.
func (b *Buffer) RowLen(row int) int {
	return b.rows[row].Len()
}

// RowText returns the text of the given row.
func (b *Buffer) RowText(row int) string {
	return b.rows[row].Text()
}

// Text returns the whole buffer as a string with rows joined by newlines.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, row := range b.rows {
		sb.WriteString(row.Text())
		if i < len(b.rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// InsertChar inserts a character at (row, col). The row must exist; the
// column is clamped by the row.
func (b *Buffer) InsertChar(row, col int, ch rune) {
	b.rows[row].InsertChar(col, ch)
}

// DeleteChar removes the character left of (row, col), if there is one.
func (b *Buffer) DeleteChar(row, col int) {
	b.rows[row].DeleteChar(col)
}

// SplitRow breaks the given row in two at the given column. The remainder
// becomes a new row directly below.
func (b *Buffer) SplitRow(row, col int) {
	rest := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = rest
}

// JoinRows merges the given row into the one above it and returns the column
// where the seam is, which is where the cursor belongs after a backspace at
// the start of a line. Joining the first row is impossible and returns -1.
func (b *Buffer) JoinRows(row int) int {
	if row == 0 {
		return -1
	}
	joinCol := b.rows[row-1].Len()
	b.rows[row-1].Join(b.rows[row])
	b.rows = append(b.rows[:row], b.rows[row+1:]...)
	return joinCol
}
