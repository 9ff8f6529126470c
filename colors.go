package main

// Utility to preview the theme. Draws one sample line per color class in its
// configured attributes, which is useful for checking how the palette looks
// on the terminal actually in use.

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// classNames lists the color classes in display order with their names.
var classNames = []struct {
	class ColorClass
	name  string
}{
	{ColorBody, "Body"},
	{ColorComment, "Comment"},
	{ColorNumber, "Number"},
	{ColorVariable, "Variable"},
	{ColorOperator, "Operator"},
	{ColorKeyword, "Keyword"},
	{ColorString, "String"},
	{ColorHeader, "Header"},
	{ColorFooter, "Footer"},
	{ColorError, "Error"},
}

// PrintColors initializes termbox and draws a sample of every theme entry.
func PrintColors() {
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		return
	}
	defer termbox.Close()

	termbox.SetOutputMode(termbox.Output256)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for i, entry := range classNames {
		fg, bg := GetThemeColor(entry.class)
		str := fmt.Sprintf(" %-10s The quick brown fox jumps over 42 lazy dogs. # comment ", entry.name)
		for j, r := range str {
			termbox.SetCell(j, i, r, fg, bg)
		}
	}

	msg := "Press any key to exit..."
	for i, r := range msg {
		termbox.SetCell(i, len(classNames)+1, r, termbox.ColorWhite, termbox.ColorDefault)
	}

	termbox.Flush()
	// Wait for any key press before closing.
	termbox.PollEvent()
}
