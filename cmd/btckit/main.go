package main

import (
	"os"

	"btckit/cmd/btckit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
