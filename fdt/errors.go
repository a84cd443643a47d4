package fdt

import "errors"

// Parse errors. Every decoding routine surfaces one of these, usually
// wrapped with positional context via fmt.Errorf and %w; callers branch
// with errors.Is. A malformed blob is always a hard failure, never a
// condition the parser papers over.
var (
	// ErrBadMagic indicates the blob does not start with 0xd00dfeed.
	ErrBadMagic = errors.New("fdt: bad magic")
	// ErrUnsupportedVersion indicates a header version outside the
	// range this package understands.
	ErrUnsupportedVersion = errors.New("fdt: unsupported version")
	// ErrTruncated indicates the blob ended before a structure it
	// declared was complete.
	ErrTruncated = errors.New("fdt: truncated blob")
	// ErrUnexpectedEnd indicates a fixed-size read ran past the end of
	// its buffer.
	ErrUnexpectedEnd = errors.New("fdt: unexpected end of buffer")
	// ErrOffsetOutOfRange indicates a header offset or string-table
	// offset points outside its block.
	ErrOffsetOutOfRange = errors.New("fdt: offset out of range")
	// ErrUnterminatedString indicates a name had no NUL terminator
	// before the end of its block.
	ErrUnterminatedString = errors.New("fdt: unterminated string")
	// ErrUnknownToken indicates a structure-block tag outside the
	// defined token set.
	ErrUnknownToken = errors.New("fdt: unknown token")
	// ErrUnexpectedToken indicates a token that is illegal at the
	// current position, such as any token after FDT_END.
	ErrUnexpectedToken = errors.New("fdt: unexpected token")
	// ErrPropertyOutsideNode indicates an FDT_PROP token with no open node.
	ErrPropertyOutsideNode = errors.New("fdt: property outside node")
	// ErrUnbalancedNodes indicates mismatched FDT_BEGIN_NODE/FDT_END_NODE
	// tokens.
	ErrUnbalancedNodes = errors.New("fdt: unbalanced begin/end nodes")
	// ErrMissingRoot indicates a structure block that ended without
	// opening a single node.
	ErrMissingRoot = errors.New("fdt: missing root node")
	// ErrDuplicatePhandle indicates two nodes carrying the same phandle id.
	ErrDuplicatePhandle = errors.New("fdt: duplicate phandle")
)

// Lookup and policy errors.
var (
	// ErrNotFound indicates a requested node, property, or phandle was missing.
	ErrNotFound = errors.New("fdt: not found")
	// ErrDuplicateProperty indicates a repeated property name within one
	// node under the DupReject policy.
	ErrDuplicateProperty = errors.New("fdt: duplicate property")
)
