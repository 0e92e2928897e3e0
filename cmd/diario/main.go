package main

import (
	"os"

	"github.com/diario-dev/diario/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
