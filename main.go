// Agora is a terminal client for browsing events and registering for
// tickets.
//
// Usage:
//
//	agora [command] [flags]
//
// Running without arguments launches the interactive TUI.
// See 'agora --help' for available commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
