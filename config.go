package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import "flag"

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	DevMode     bool // Enables developer tools (Ctrl-C to exit).
	ShowColors  bool // Command-line flag to show the theme and exit.
	ShowVersion bool // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config Configuration

// InitConfig sets up command-line flags and parses them into the global Config.
func InitConfig() {
	flag.BoolVar(&Config.DevMode, "dev", false, "Enable development mode")
	flag.BoolVar(&Config.ShowColors, "colors", false, "Show the color theme")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")

	flag.Parse()
}
