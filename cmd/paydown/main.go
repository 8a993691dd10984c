package main

import (
	"os"

	"github.com/paydown-dev/paydown/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
