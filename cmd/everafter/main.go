package main

import (
	"os"

	"everafter/cmd/everafter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
