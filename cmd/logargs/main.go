// Package main provides the entry point for the logargs CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/logargs/cmd/logargs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
