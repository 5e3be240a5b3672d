package main

import (
	"os"

	"github.com/fredspizza/numeric-utils/cmd/numeric/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
