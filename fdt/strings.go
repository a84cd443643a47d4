package fdt

import (
	"bytes"
	"fmt"
)

// StringTable is a borrowed, read-only view over the strings block: a pool
// of concatenated NUL-terminated property names referenced by byte offset
// from FDT_PROP tokens. Lookups never mutate, so a table may be shared
// across goroutines freely.
type StringTable struct {
	b []byte
}

// NewStringTable wraps the given strings block.
func NewStringTable(b []byte) StringTable {
	return StringTable{b: b}
}

// Len returns the size of the strings block in bytes.
func (st StringTable) Len() int { return len(st.b) }

// Resolve returns the NUL-terminated name starting at off, zero-copy up to
// the string conversion.
func (st StringTable) Resolve(off uint32) (string, error) {
	if int64(off) >= int64(len(st.b)) {
		return "", fmt.Errorf("strings block offset %d of %d: %w", off, len(st.b), ErrOffsetOutOfRange)
	}
	rest := st.b[off:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return "", fmt.Errorf("strings block offset %d: %w", off, ErrUnterminatedString)
	}
	return string(rest[:i]), nil
}
