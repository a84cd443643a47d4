// Package fdt parses Flattened Devicetree Blobs (DTBs) into queryable,
// immutable trees of nodes and properties.
//
// The blob is consumed in place: the header decoder sections the buffer
// into zero-copy views, a pull-based tokenizer walks the structure block,
// and a single-pass builder materializes a flat arena of nodes and
// properties addressed by integer handles. A post-pass indexes phandles for
// cross-reference lookups. Malformed input is always a hard, typed error;
// the parser never recovers silently and never exposes a partial tree.
//
// Typical use:
//
//	tree, err := fdt.Parse(blob, fdt.Options{})
//	if err != nil {
//		return err
//	}
//	id, _ := tree.FindNode("/cpus/cpu@0")
//	p, _ := tree.PropertyNamed(id, "compatible")
//	fmt.Println(fdt.InterpretNamed(p.Name, p.Value).Strs)
//
// By default property values are copied into tree-owned storage. With
// Options.ZeroCopy they alias the input buffer instead, which keeps the
// parse allocation-light but ties the tree's lifetime to the buffer (and,
// for Open, to the mapping).
package fdt
