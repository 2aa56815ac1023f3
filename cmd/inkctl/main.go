package main

import (
	"os"

	"inkwell/cmd/inkctl/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
