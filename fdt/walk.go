package fdt

// WalkFunc visits one node during a traversal. Returning false stops the
// walk early.
type WalkFunc func(id NodeID, depth int) bool

// Walk traverses the tree depth-first in document order, iteratively, so
// pathological nesting depth cannot blow the goroutine stack.
func (t *Tree) Walk(fn WalkFunc) {
	if t.root == NoNode {
		return
	}
	type frame struct {
		id    NodeID
		depth int
	}
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{t.root, 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.id, f.depth) {
			return
		}
		kids := t.nodes[f.id].Children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{kids[i], f.depth + 1})
		}
	}
}

// FindCompatible returns, in document order, every node whose compatible
// string list contains the given value.
func (t *Tree) FindCompatible(compat string) []NodeID {
	var out []NodeID
	t.Walk(func(id NodeID, _ int) bool {
		p, err := t.PropertyNamed(id, "compatible")
		if err != nil {
			return true
		}
		v := InterpretNamed(p.Name, p.Value)
		switch v.Kind {
		case ValueString:
			if v.Str == compat {
				out = append(out, id)
			}
		case ValueStringList:
			for _, s := range v.Strs {
				if s == compat {
					out = append(out, id)
					break
				}
			}
		}
		return true
	})
	return out
}
