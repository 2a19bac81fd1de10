package main

import (
	"os"

	"handup/cmd/handup/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
