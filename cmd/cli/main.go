// Package main is the entry point for the powercost CLI.
package main

import (
	"fmt"
	"os"

	"powercost/cmd/cli/cmd"
	"powercost/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		fmt.Printf("Error processing file: %v\n", err)
		os.Exit(1)
	}
}
