package main

import (
	"os"

	"socialid/cmd/idctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
