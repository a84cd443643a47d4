package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fdtkit/fdt"
	"github.com/joshuapare/fdtkit/fdt/printer"
)

func init() {
	rootCmd.AddCommand(newTreeCmd())
}

func newTreeCmd() *cobra.Command {
	var maxDepth int
	var noProps bool

	cmd := &cobra.Command{
		Use:   "tree <dtb> [path]",
		Short: "Print the devicetree in source-like form",
		Long: `Parses the blob and prints the node/property tree, optionally
starting at a node path.

Example:
  fdtdump tree board.dtb
  fdtdump tree board.dtb /cpus
  fdtdump tree board.dtb --json --max-depth 2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args, maxDepth, noProps)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Limit recursion depth (0 = unlimited)")
	cmd.Flags().BoolVar(&noProps, "no-props", false, "Omit property values")
	return cmd
}

func runTree(args []string, maxDepth int, noProps bool) error {
	blob, err := fdt.Open(args[0], parseOptions())
	if err != nil {
		return err
	}
	defer blob.Close()

	tree, err := blob.Tree()
	if err != nil {
		return err
	}

	start := tree.Root()
	if len(args) == 2 {
		start, err = tree.FindNode(args[1])
		if err != nil {
			return err
		}
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = maxDepth
	opts.ShowProperties = !noProps
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(tree, os.Stdout, opts).PrintNode(start)
}
