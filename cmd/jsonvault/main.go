package main

import (
	"os"

	"jsonvault/cmd/jsonvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
