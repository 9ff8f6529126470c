package main

// The entry point of the tedit editor. It handles command-line flags,
// initializes the terminal interface (termbox), and starts the main editor
// loop on the file named on the command line.

import (
	"flag"
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	// Initialize configuration from flags.
	InitConfig()

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	// Show the theme if -colors flag is provided.
	if Config.ShowColors {
		PrintColors()
		return
	}

	// Exactly one file to edit; it does not have to exist yet.
	if flag.NArg() < 1 {
		fmt.Printf("Usage: %s filename\n", os.Args[0])
		os.Exit(1)
	}

	editor := NewEditor(flag.Arg(0), Config.DevMode)

	// Initialize termbox for TUI handling.
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		os.Exit(1)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc)
	// Use 256 color mode for better aesthetics.
	termbox.SetOutputMode(termbox.Output256)

	// Enter the main event loop.
	editor.HandleEvents(Screen{})
}
