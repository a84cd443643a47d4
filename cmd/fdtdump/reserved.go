package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fdtkit/fdt"
)

func init() {
	rootCmd.AddCommand(newReservedCmd())
}

func newReservedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserved <dtb>",
		Short: "List the memory reservation entries",
		Long: `Lists the (address, size) pairs of the memory reservation block.

Example:
  fdtdump reserved board.dtb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReserved(args[0])
		},
	}
}

func runReserved(path string) error {
	blob, err := fdt.Open(path, parseOptions())
	if err != nil {
		return err
	}
	defer blob.Close()

	entries, err := blob.Reservations().Collect()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("no memory reservations")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%#016x  %#016x\n", e.Address, e.Size)
	}
	return nil
}
