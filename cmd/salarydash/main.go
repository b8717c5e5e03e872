package main

import (
	"os"

	"salarydash/cmd/salarydash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
