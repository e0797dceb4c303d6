// Package main provides the entry point for the numbeo cost-of-living CLI.
//
// numbeo fetches the Numbeo item catalog and the prices observed in one city,
// joins them and prints the result as a table ordered like the Numbeo
// website.
//
// Usage:
//
//	numbeo --city <city> --country <country> [flags]
//	numbeo items
//	numbeo version
//
// For detailed usage information, run: numbeo --help
package main

import (
	"fmt"
	"os"

	"numbeo/cmd"
	"numbeo/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.FormatErrorForUser(err))
		os.Exit(errors.GetExitCode(err))
	}
}
