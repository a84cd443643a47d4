package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/fdtkit/fdt"
)

// printNodeDTS renders a node in devicetree-source style:
//
//	/ {
//	    compatible = "acme,board";
//	    cpus {
//	        ...
//	    };
//	};
func (p *Printer) printNodeDTS(id fdt.NodeID, depth int) error {
	node := p.tree.Node(id)
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	name := node.Name
	if id == p.tree.Root() {
		name = "/"
	}
	if _, err := fmt.Fprintf(p.w, "%s%s {\n", indent, name); err != nil {
		return err
	}

	if p.opts.ShowProperties {
		for _, pid := range p.tree.Properties(id) {
			prop := p.tree.Property(pid)
			if _, err := fmt.Fprintf(p.w, "%s%s%s\n",
				indent, strings.Repeat(" ", p.opts.IndentSize), p.formatProperty(prop)); err != nil {
				return err
			}
		}
	}

	if p.opts.MaxDepth == 0 || depth+1 < p.opts.MaxDepth {
		for _, cid := range p.tree.Children(id) {
			if err := p.printNodeDTS(cid, depth+1); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(p.w, "%s};\n", indent)
	return err
}

// formatProperty renders one property in DTS syntax.
func (p *Printer) formatProperty(prop *fdt.Property) string {
	v := fdt.InterpretNamed(prop.Name, prop.Value)
	switch v.Kind {
	case fdt.ValueEmpty:
		return prop.Name + ";"
	case fdt.ValueString:
		return fmt.Sprintf("%s = %q;", prop.Name, v.Str)
	case fdt.ValueStringList:
		quoted := make([]string, len(v.Strs))
		for i, s := range v.Strs {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("%s = %s;", prop.Name, strings.Join(quoted, ", "))
	case fdt.ValueU32:
		return fmt.Sprintf("%s = <%#x>;", prop.Name, v.U32)
	case fdt.ValueU64:
		return fmt.Sprintf("%s = <%#x>;", prop.Name, v.U64)
	}
	return fmt.Sprintf("%s = [%s];", prop.Name, p.formatBytes(v.Raw))
}

// formatBytes renders opaque bytes as space-separated hex pairs, truncated
// to MaxValueBytes.
func (p *Printer) formatBytes(raw []byte) string {
	n := len(raw)
	truncated := false
	if p.opts.MaxValueBytes > 0 && n > p.opts.MaxValueBytes {
		n = p.opts.MaxValueBytes
		truncated = true
	}
	parts := make([]string, 0, n+1)
	for _, b := range raw[:n] {
		parts = append(parts, fmt.Sprintf("%02x", b))
	}
	if truncated {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}
