// Package printer renders a parsed devicetree for humans. It walks the
// fdt.Tree read API only and holds no parsing logic of its own.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/fdtkit/fdt"
)

const (
	DefaultIndentSize    = 4
	DefaultMaxValueBytes = 64
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatDTS outputs devicetree-source style text.
	FormatDTS Format = "dts"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (dts, json).
	// Default: FormatDTS
	Format Format

	// IndentSize is the number of spaces per indent level (dts format only).
	// Default: 4
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowProperties includes property values in output.
	// Default: true
	ShowProperties bool

	// MaxValueBytes limits how many bytes of opaque values to display.
	// Longer values are truncated with an ellipsis. 0 = no limit.
	// Default: 64
	MaxValueBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatDTS,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       0,
		ShowProperties: true,
		MaxValueBytes:  DefaultMaxValueBytes,
	}
}

// Printer handles formatted output of parsed devicetrees.
type Printer struct {
	tree *fdt.Tree
	w    io.Writer
	opts Options
}

// New creates a new Printer over t writing to w.
func New(t *fdt.Tree, w io.Writer, opts Options) *Printer {
	if opts.IndentSize == 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{tree: t, w: w, opts: opts}
}

// PrintTree renders the whole tree starting at the root.
func (p *Printer) PrintTree() error {
	return p.PrintNode(p.tree.Root())
}

// PrintNode renders the subtree rooted at id.
func (p *Printer) PrintNode(id fdt.NodeID) error {
	if p.tree.Node(id) == nil {
		return fmt.Errorf("printer: unknown node %d", id)
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printNodeJSON(id)
	default:
		return p.printNodeDTS(id, 0)
	}
}
