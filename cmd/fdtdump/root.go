package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joshuapare/fdtkit/fdt"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "fdtdump",
	Short: "Inspect flattened devicetree blob (DTB) files",
	Long: `fdtdump parses flattened devicetree blobs and displays their header,
memory reservations, and node/property tree. Malformed blobs are rejected
with a precise error rather than a partial dump.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic parse logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOptions builds the fdt.Options shared by all subcommands.
func parseOptions() fdt.Options {
	opts := fdt.Options{ZeroCopy: true}
	if verbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.TraceLevel).With().Timestamp().Logger()
		opts.Logger = &log
	}
	return opts
}

// printJSON outputs data as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
