package fdt

import (
	"fmt"
	"strings"
)

// NodeID and PropID are small, copyable handles referring to node and
// property records in a Tree's arena. Handles are plain indices; they stay
// stable for the tree's whole lifetime and are never reused.
type (
	NodeID int32
	PropID int32
)

// NoNode is the parent handle of the root node.
const NoNode NodeID = -1

// Node is one devicetree node. Parent/child relations are expressed as
// arena indices rather than owning pointers, so the whole tree frees as a
// unit and records stay trivially copyable.
type Node struct {
	Name     string
	Parent   NodeID
	Children []NodeID
	Props    []PropID
	// Phandle is the node's resolved phandle id, or 0 when the node
	// carries none. (Phandle 0 is not a legal id in practice.)
	Phandle uint32
}

// Property is one name/value pair attached to a node. Value either aliases
// the input blob (zero-copy mode) or arena-owned storage (owned mode);
// interpretation is deferred until requested.
type Property struct {
	Name  string
	Value []byte
	Node  NodeID
}

// Tree is the fully materialized parse result: flat arenas of nodes and
// properties, the root handle, and a derived phandle index. A Tree is
// immutable after construction and safe to share across goroutines.
type Tree struct {
	nodes    []Node
	props    []Property
	root     NodeID
	phandles map[uint32]NodeID
}

// Root returns the handle of the root node (name "").
func (t *Tree) Root() NodeID { return t.root }

// NumNodes returns the total node count.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// NumProperties returns the total property count.
func (t *Tree) NumProperties() int { return len(t.props) }

// Node returns the record for id, or nil for an out-of-range handle.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Property returns the record for id, or nil for an out-of-range handle.
func (t *Tree) Property(id PropID) *Property {
	if id < 0 || int(id) >= len(t.props) {
		return nil
	}
	return &t.props[id]
}

// Children returns the child handles of id in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return n.Children
}

// Properties returns the property handles of id in document order.
func (t *Tree) Properties(id NodeID) []PropID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return n.Props
}

// PropertyNamed returns the property called name on node id, or ErrNotFound.
// Under the last-wins duplicate policy the surviving occurrence is returned.
func (t *Tree) PropertyNamed(id NodeID, name string) (*Property, error) {
	n := t.Node(id)
	if n == nil {
		return nil, fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	for _, pid := range n.Props {
		if t.props[pid].Name == name {
			return &t.props[pid], nil
		}
	}
	return nil, fmt.Errorf("property %q on node %q: %w", name, n.Name, ErrNotFound)
}

// ChildNamed returns the child of id called name, or ErrNotFound.
func (t *Tree) ChildNamed(id NodeID, name string) (NodeID, error) {
	n := t.Node(id)
	if n == nil {
		return NoNode, fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	for _, cid := range n.Children {
		if t.nodes[cid].Name == name {
			return cid, nil
		}
	}
	return NoNode, fmt.Errorf("child %q of %q: %w", name, n.Name, ErrNotFound)
}

// FindNode resolves a slash-separated path ("/cpus/cpu@0") to a node handle.
// "/" and "" both name the root. Matching is exact, including any unit
// address suffix.
func (t *Tree) FindNode(path string) (NodeID, error) {
	id := t.root
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		next, err := t.ChildNamed(id, part)
		if err != nil {
			return NoNode, fmt.Errorf("path %q: %w", path, ErrNotFound)
		}
		id = next
	}
	return id, nil
}

// Path returns the full slash-separated path of id, "/" for the root.
func (t *Tree) Path(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	if n.Parent == NoNode {
		return "/"
	}
	parts := []string{}
	for ; id != t.root; id = t.nodes[id].Parent {
		parts = append(parts, t.nodes[id].Name)
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(parts[i])
	}
	return sb.String()
}

// ResolvePhandle returns the node carrying phandle id, or ErrNotFound.
func (t *Tree) ResolvePhandle(id uint32) (NodeID, error) {
	nid, ok := t.phandles[id]
	if !ok {
		return NoNode, fmt.Errorf("phandle %d: %w", id, ErrNotFound)
	}
	return nid, nil
}

// Interpret classifies the value of pid structurally. See InterpretNamed
// for the variant that also consults the well-known name table.
func (t *Tree) Interpret(pid PropID) Value {
	p := t.Property(pid)
	if p == nil {
		return Value{Kind: ValueBytes}
	}
	return InterpretNamed(p.Name, p.Value)
}

// NumCPUs returns the number of children of the /cpus node, or 0 when the
// tree has none.
func (t *Tree) NumCPUs() int {
	id, err := t.ChildNamed(t.root, "cpus")
	if err != nil {
		return 0
	}
	n := 0
	for _, cid := range t.Children(id) {
		if dt, err := t.PropertyNamed(cid, "device_type"); err == nil {
			if v := InterpretNamed(dt.Name, dt.Value); v.Kind == ValueString && v.Str != "cpu" {
				continue
			}
		}
		n++
	}
	return n
}

// HasCPUs reports whether the tree carries a /cpus node.
func (t *Tree) HasCPUs() bool {
	_, err := t.ChildNamed(t.root, "cpus")
	return err == nil
}
