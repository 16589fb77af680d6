// Package main provides the CLI entrypoint for wintz-generator.
//
// wintz-generator refreshes the generated Windows-to-IANA time zone table:
//   - Downloads the CLDR windowsZones.xml supplemental data document
//   - Extracts the world-territory ("001") mapping rows
//   - Writes two sorted, aligned static arrays to the output file
//
// Run with no arguments to regenerate the default table.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
