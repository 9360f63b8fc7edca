package main

import (
	"os"

	"github.com/nicolas-van/bisync/cmd"
)

func main() {
	// Relaunch inside a terminal compatibility emulator if necessary.
	cmd.HandleTerminalCompatibility()

	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
