package main

import (
	"os"

	"github.com/heartmarshall/vocabdeck/cmd/vocabdeck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
