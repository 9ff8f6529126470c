package main

// Color palette and theme used by the editor. Maps semantic color classes
// (like ColorComment) to specific terminal attributes (foreground and
// background). Every character cell in the buffer carries one of these
// classes, so the renderer never inspects text to decide how to paint it.

import "github.com/nsf/termbox-go"

// To see the palette execute `tedit -colors`.

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorClass is an enum-like type for semantic color identifiers.
type ColorClass int

const (
	ColorBody ColorClass = iota // Plain text, whitespace, and anything unclassified.

	ColorComment  // '#' and the rest of the row after it.
	ColorNumber   // Decimal digits.
	ColorVariable // Letters and underscores.
	ColorOperator // Remaining printable symbols.

	ColorKeyword // Reserved for a future classifier.
	ColorString  // Reserved for a future classifier.

	ColorHeader // Title bar at the top of the screen.
	ColorFooter // Status bar at the bottom of the screen.
	ColorError  // Error notices on the status bar.
)

// Theme maps each ColorClass to its actual visual attributes.
var Theme = map[ColorClass]Color{
	ColorBody: {Background: termbox.ColorDefault, Foreground: termbox.ColorGreen},

	// Classifier output
	ColorComment:  {Background: termbox.ColorDefault, Foreground: termbox.ColorBlue},
	ColorNumber:   {Background: termbox.ColorDefault, Foreground: termbox.ColorMagenta},
	ColorVariable: {Background: termbox.ColorDefault, Foreground: termbox.ColorWhite},
	ColorOperator: {Background: termbox.ColorDefault, Foreground: termbox.ColorRed},

	ColorKeyword: {Background: termbox.ColorDefault, Foreground: termbox.ColorYellow},
	ColorString:  {Background: termbox.ColorDefault, Foreground: termbox.ColorCyan},

	// Chrome
	ColorHeader: {Background: termbox.ColorBlue, Foreground: termbox.ColorWhite},
	ColorFooter: {Background: termbox.ColorBlue, Foreground: termbox.ColorWhite},
	ColorError:  {Background: termbox.ColorRed, Foreground: termbox.ColorWhite},
}

// GetThemeColor returns the foreground and background attributes for a given class.
func GetThemeColor(class ColorClass) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[class]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if class is not themed.
	return termbox.ColorDefault, termbox.ColorDefault
}
