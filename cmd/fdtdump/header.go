package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fdtkit/fdt"
)

func init() {
	rootCmd.AddCommand(newHeaderCmd())
}

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header <dtb>",
		Short: "Validate a DTB header and report its fields",
		Long: `Validates the blob's magic, version, and block offsets, then prints
the header fields.

Example:
  fdtdump header board.dtb
  fdtdump header board.dtb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(args[0])
		},
	}
}

func runHeader(path string) error {
	blob, err := fdt.Open(path, parseOptions())
	if err != nil {
		return err
	}
	defer blob.Close()

	h := blob.Header()
	if jsonOut {
		return printJSON(h)
	}

	fmt.Printf("magic:             %#08x\n", h.Magic)
	fmt.Printf("totalsize:         %d\n", h.TotalSize)
	fmt.Printf("off_dt_struct:     %d\n", h.StructOffset)
	fmt.Printf("off_dt_strings:    %d\n", h.StringsOffset)
	fmt.Printf("off_mem_rsvmap:    %d\n", h.MemRsvmapOffset)
	fmt.Printf("version:           %d\n", h.Version)
	fmt.Printf("last_comp_version: %d\n", h.LastCompVersion)
	fmt.Printf("boot_cpuid_phys:   %d\n", h.BootCPUIDPhys)
	fmt.Printf("size_dt_strings:   %d\n", h.StringsSize)
	fmt.Printf("size_dt_struct:    %d\n", h.StructSize)
	return nil
}
