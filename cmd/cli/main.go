// Package main is the entry point for the ticket-upgrade CLI.
package main

import (
	"os"

	"ticket-upgrade/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
