package main

import (
	"fmt"
	"os"

	"require-checklist/cmd/checklist/commands"
	"require-checklist/cmd/checklist/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
