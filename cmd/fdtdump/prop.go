package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fdtkit/fdt"
)

func init() {
	rootCmd.AddCommand(newPropCmd())
}

func newPropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prop <dtb> <node-path> <name>",
		Short: "Print one property's interpreted value",
		Long: `Looks up a property on a node by path and prints its interpreted
value. Interpretation is best-effort; unclassifiable values print as hex.

Example:
  fdtdump prop board.dtb / compatible
  fdtdump prop board.dtb /cpus/cpu@0 clock-frequency`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProp(args[0], args[1], args[2])
		},
	}
}

func runProp(path, nodePath, name string) error {
	blob, err := fdt.Open(path, parseOptions())
	if err != nil {
		return err
	}
	defer blob.Close()

	tree, err := blob.Tree()
	if err != nil {
		return err
	}
	id, err := tree.FindNode(nodePath)
	if err != nil {
		return err
	}
	p, err := tree.PropertyNamed(id, name)
	if err != nil {
		return err
	}

	v := fdt.InterpretNamed(p.Name, p.Value)
	if jsonOut {
		return printJSON(map[string]any{
			"node":     tree.Path(id),
			"name":     p.Name,
			"kind":     v.Kind.String(),
			"raw_size": len(p.Value),
		})
	}
	switch v.Kind {
	case fdt.ValueEmpty:
		fmt.Printf("%s: (empty)\n", p.Name)
	case fdt.ValueString:
		fmt.Printf("%s: %q\n", p.Name, v.Str)
	case fdt.ValueStringList:
		fmt.Printf("%s: %q\n", p.Name, v.Strs)
	case fdt.ValueU32:
		fmt.Printf("%s: %#x\n", p.Name, v.U32)
	case fdt.ValueU64:
		fmt.Printf("%s: %#x\n", p.Name, v.U64)
	default:
		fmt.Printf("%s: % x\n", p.Name, v.Raw)
	}
	return nil
}
