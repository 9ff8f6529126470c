package main

// Character-class highlighting. Classifies every cell of the buffer by
// looking at single characters: '#' starts a comment that runs to the end of
// the row, digits are numbers, letters and underscores are variables, other
// printable symbols are operators. The classes land directly in the cells, so
// the renderer just reads them back.

import "unicode"

// highlightRow classifies every cell in one row.
func highlightRow(r *Row) {
	for i := range r.cells {
		ch := r.cells[i].Ch

		// A comment claims the rest of the row, whatever it contains.
		if ch == '#' {
			for ; i < len(r.cells); i++ {
				r.cells[i].Class = ColorComment
			}
			return
		}

		switch {
		case unicode.IsSpace(ch):
			r.cells[i].Class = ColorBody
		case unicode.IsDigit(ch):
			r.cells[i].Class = ColorNumber
		case unicode.IsLetter(ch) || ch == '_':
			r.cells[i].Class = ColorVariable
		default:
			r.cells[i].Class = ColorOperator
		}
	}
}

// Highlight reclassifies the whole buffer. Edits call this after every
// change; with a line-local classifier and short files the full pass is
// simpler than tracking which rows an edit touched, and a future classifier
// with cross-row state (block comments, strings) needs the full pass anyway.
func (b *Buffer) Highlight() {
	for _, row := range b.rows {
		highlightRow(row)
	}
}
