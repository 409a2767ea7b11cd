package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethandpowers/minigrep/cmd/minigrep/commands"
)

func main() {
	rootCmd := commands.NewRootCommand(&commands.Options{
		ProgramName: filepath.Base(os.Args[0]),
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
