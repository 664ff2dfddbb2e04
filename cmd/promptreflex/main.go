// Package main is the entry point for the promptreflex CLI.
package main

import (
	"os"

	"github.com/promptreflex-io/promptreflex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
