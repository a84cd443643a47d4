package fdt

import (
	"fmt"

	"github.com/joshuapare/fdtkit/internal/format"
)

// TokenKind identifies one structure-block token.
type TokenKind uint32

const (
	BeginNode TokenKind = format.TokenBeginNode
	EndNode   TokenKind = format.TokenEndNode
	Prop      TokenKind = format.TokenProp
	Nop       TokenKind = format.TokenNop
	End       TokenKind = format.TokenEnd
)

func (k TokenKind) String() string {
	switch k {
	case BeginNode:
		return "FDT_BEGIN_NODE"
	case EndNode:
		return "FDT_END_NODE"
	case Prop:
		return "FDT_PROP"
	case Nop:
		return "FDT_NOP"
	case End:
		return "FDT_END"
	}
	return fmt.Sprintf("FDT(%#x)", uint32(k))
}

// Token is one decoded structure-block token. Name is set for BeginNode;
// NameOff and Value are set for Prop. Value is a zero-copy view into the
// structure block and is only valid until the next blob mutation (the blob
// is never mutated here, so in practice for the life of the input buffer).
type Token struct {
	Kind    TokenKind
	Name    string
	NameOff uint32
	Value   []byte
}

// Tokenizer is a pull-based state machine over the structure block. It
// enforces 4-byte token alignment and payload bounds but deliberately does
// not track nesting; begin/end balance is the tree builder's concern, which
// keeps the two independently testable.
type Tokenizer struct {
	cur     *Cursor
	seenEnd bool
}

// NewTokenizer returns a tokenizer positioned at the start of the structure
// block.
func NewTokenizer(structBlock []byte) *Tokenizer {
	return &Tokenizer{cur: NewCursor(structBlock)}
}

// Pos returns the byte offset of the next unread token within the block.
func (tz *Tokenizer) Pos() int { return tz.cur.Pos() }

// Next decodes and returns the next token. After FDT_END has been emitted,
// any further call fails with ErrUnexpectedToken.
func (tz *Tokenizer) Next() (Token, error) {
	if tz.seenEnd {
		return Token{}, fmt.Errorf("token at %d after FDT_END: %w", tz.cur.Pos(), ErrUnexpectedToken)
	}
	tag, err := tz.cur.ReadU32()
	if err != nil {
		return Token{}, fmt.Errorf("token tag: %w", ErrTruncated)
	}

	switch TokenKind(tag) {
	case BeginNode:
		name, err := tz.cur.ReadCString()
		if err != nil {
			return Token{}, fmt.Errorf("node name: %w", err)
		}
		if err := tz.cur.AlignTo(format.TokenAlignment); err != nil {
			return Token{}, fmt.Errorf("node name padding: %w", err)
		}
		return Token{Kind: BeginNode, Name: name}, nil

	case Prop:
		length, err := tz.cur.ReadU32()
		if err != nil {
			return Token{}, fmt.Errorf("prop length: %w", ErrTruncated)
		}
		nameOff, err := tz.cur.ReadU32()
		if err != nil {
			return Token{}, fmt.Errorf("prop name offset: %w", ErrTruncated)
		}
		value, err := tz.cur.Slice(int(length))
		if err != nil {
			return Token{}, fmt.Errorf("prop value of %d bytes: %w", length, ErrTruncated)
		}
		if err := tz.cur.AlignTo(format.TokenAlignment); err != nil {
			return Token{}, fmt.Errorf("prop value padding: %w", err)
		}
		return Token{Kind: Prop, NameOff: nameOff, Value: value}, nil

	case EndNode:
		return Token{Kind: EndNode}, nil

	case Nop:
		return Token{Kind: Nop}, nil

	case End:
		tz.seenEnd = true
		return Token{Kind: End}, nil
	}
	return Token{}, fmt.Errorf("tag %#08x at %d: %w", tag, tz.cur.Pos()-4, ErrUnknownToken)
}
