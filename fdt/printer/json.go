package printer

import (
	"encoding/hex"
	"encoding/json"

	"github.com/joshuapare/fdtkit/fdt"
)

// jsonNode represents one devicetree node in JSON output.
type jsonNode struct {
	Name       string         `json:"name"`
	Phandle    uint32         `json:"phandle,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Children   []jsonNode     `json:"children,omitempty"`
}

// printNodeJSON renders the subtree rooted at id as indented JSON.
func (p *Printer) printNodeJSON(id fdt.NodeID) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(p.buildJSONNode(id, 0))
}

func (p *Printer) buildJSONNode(id fdt.NodeID, depth int) jsonNode {
	node := p.tree.Node(id)
	out := jsonNode{Name: node.Name, Phandle: node.Phandle}
	if id == p.tree.Root() {
		out.Name = "/"
	}

	if p.opts.ShowProperties && len(node.Props) > 0 {
		out.Properties = make(map[string]any, len(node.Props))
		for _, pid := range node.Props {
			prop := p.tree.Property(pid)
			out.Properties[prop.Name] = jsonValue(fdt.InterpretNamed(prop.Name, prop.Value))
		}
	}

	if p.opts.MaxDepth == 0 || depth+1 < p.opts.MaxDepth {
		for _, cid := range node.Children {
			out.Children = append(out.Children, p.buildJSONNode(cid, depth+1))
		}
	}
	return out
}

// jsonValue converts an interpreted value into a JSON-friendly form.
// Opaque bytes become a hex string; an empty property becomes true, the
// conventional boolean-flag reading.
func jsonValue(v fdt.Value) any {
	switch v.Kind {
	case fdt.ValueEmpty:
		return true
	case fdt.ValueString:
		return v.Str
	case fdt.ValueStringList:
		return v.Strs
	case fdt.ValueU32:
		return v.U32
	case fdt.ValueU64:
		return v.U64
	}
	return hex.EncodeToString(v.Raw)
}
