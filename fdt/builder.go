package fdt

import (
	"fmt"

	"github.com/rs/zerolog"
)

// treeBuilder consumes the token stream and materializes the arena. It owns
// the only piece of parse state: the stack of currently open nodes.
type treeBuilder struct {
	tree    Tree
	strings StringTable
	stack   []NodeID
	opts    Options
	log     zerolog.Logger
}

// buildTree drives the tokenizer to completion and returns the finished
// tree. A single linear pass over the structure block, followed by the
// phandle index pass over the materialized properties.
func buildTree(tz *Tokenizer, st StringTable, opts Options) (*Tree, error) {
	b := &treeBuilder{
		tree:    Tree{root: NoNode},
		strings: st,
		opts:    opts,
		log:     opts.logger(),
	}
	for {
		tok, err := tz.Next()
		if err != nil {
			b.log.Error().Err(err).Int("offset", tz.Pos()).Msg("malformed structure block")
			return nil, err
		}
		done, err := b.consume(tok)
		if err != nil {
			b.log.Error().Err(err).Int("offset", tz.Pos()).Msg("malformed structure block")
			return nil, err
		}
		if done {
			break
		}
	}
	if err := b.indexPhandles(); err != nil {
		return nil, err
	}
	return &b.tree, nil
}

// consume applies one token. Returns done = true on FDT_END.
func (b *treeBuilder) consume(tok Token) (bool, error) {
	switch tok.Kind {
	case BeginNode:
		return false, b.beginNode(tok.Name)
	case Prop:
		return false, b.addProperty(tok)
	case EndNode:
		if len(b.stack) == 0 {
			return false, fmt.Errorf("close with no open node: %w", ErrUnbalancedNodes)
		}
		id := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.log.Trace().Str("node", b.tree.nodes[id].Name).Msg("node closed")
		return false, nil
	case Nop:
		return false, nil
	case End:
		if len(b.stack) != 0 {
			return false, fmt.Errorf("%d nodes still open at FDT_END: %w", len(b.stack), ErrUnbalancedNodes)
		}
		if b.tree.root == NoNode {
			return false, ErrMissingRoot
		}
		return true, nil
	}
	return false, fmt.Errorf("token %v: %w", tok.Kind, ErrUnknownToken)
}

func (b *treeBuilder) beginNode(name string) error {
	parent := NoNode
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1]
	} else if b.tree.root != NoNode {
		return fmt.Errorf("second top-level node %q: %w", name, ErrUnexpectedToken)
	}
	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, Node{Name: name, Parent: parent})
	if parent == NoNode {
		b.tree.root = id
	} else {
		b.tree.nodes[parent].Children = append(b.tree.nodes[parent].Children, id)
	}
	b.stack = append(b.stack, id)
	b.log.Trace().Str("node", name).Int("depth", len(b.stack)).Msg("node opened")
	return nil
}

func (b *treeBuilder) addProperty(tok Token) error {
	if len(b.stack) == 0 {
		return fmt.Errorf("property at name offset %d: %w", tok.NameOff, ErrPropertyOutsideNode)
	}
	name, err := b.strings.Resolve(tok.NameOff)
	if err != nil {
		return fmt.Errorf("property name: %w", err)
	}
	owner := b.stack[len(b.stack)-1]

	if prev := b.findProp(owner, name); prev >= 0 {
		switch b.opts.DuplicateProps {
		case DupReject:
			return fmt.Errorf("property %q on node %q: %w", name, b.tree.nodes[owner].Name, ErrDuplicateProperty)
		case DupFirstWins:
			return nil
		default: // DupLastWins
			b.tree.props[prev].Value = b.propValue(tok.Value)
			return nil
		}
	}

	pid := PropID(len(b.tree.props))
	b.tree.props = append(b.tree.props, Property{
		Name:  name,
		Value: b.propValue(tok.Value),
		Node:  owner,
	})
	b.tree.nodes[owner].Props = append(b.tree.nodes[owner].Props, pid)
	b.log.Trace().Str("node", b.tree.nodes[owner].Name).Str("property", name).
		Int("bytes", len(tok.Value)).Msg("property attached")
	return nil
}

// findProp returns the PropID of name on owner, or -1.
func (b *treeBuilder) findProp(owner NodeID, name string) PropID {
	for _, pid := range b.tree.nodes[owner].Props {
		if b.tree.props[pid].Name == name {
			return pid
		}
	}
	return -1
}

// propValue applies the ownership policy to a raw value slice.
func (b *treeBuilder) propValue(raw []byte) []byte {
	if b.opts.ZeroCopy || len(raw) == 0 {
		return raw
	}
	return append([]byte(nil), raw...)
}

// indexPhandles runs after the tree is complete, so forward references in
// the structure block need no special ordering handling.
func (b *treeBuilder) indexPhandles() error {
	b.tree.phandles = make(map[uint32]NodeID)
	for _, p := range b.tree.props {
		if p.Name != "phandle" && p.Name != "linux,phandle" {
			continue
		}
		if len(p.Value) != 4 {
			b.log.Warn().Str("node", b.tree.nodes[p.Node].Name).
				Int("bytes", len(p.Value)).Msg("phandle property with unexpected length, not indexed")
			continue
		}
		id := uint32(p.Value[0])<<24 | uint32(p.Value[1])<<16 | uint32(p.Value[2])<<8 | uint32(p.Value[3])
		if other, ok := b.tree.phandles[id]; ok && other != p.Node {
			return fmt.Errorf("phandle %d on %q and %q: %w",
				id, b.tree.nodes[other].Name, b.tree.nodes[p.Node].Name, ErrDuplicatePhandle)
		}
		b.tree.phandles[id] = p.Node
		b.tree.nodes[p.Node].Phandle = id
	}
	return nil
}
