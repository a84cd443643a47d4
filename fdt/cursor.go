package fdt

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/fdtkit/internal/buf"
	"github.com/joshuapare/fdtkit/internal/format"
)

// Cursor is a bounds-checked reader over a fixed byte buffer. It borrows the
// buffer, tracks a position, and never allocates: every read is a pure
// position advance that either succeeds or fails with a typed error.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.off }

// Remaining reports how many unread bytes are left.
func (c *Cursor) Remaining() int { return len(c.b) - c.off }

// ReadU32 reads a big-endian uint32 and advances past it.
func (c *Cursor) ReadU32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, fmt.Errorf("u32 at %d: %w", c.off, ErrUnexpectedEnd)
	}
	v := buf.U32BE(c.b[c.off:])
	c.off += 4
	return v, nil
}

// ReadU64 reads a big-endian uint64 and advances past it.
func (c *Cursor) ReadU64() (uint64, error) {
	if c.Remaining() < 8 {
		return 0, fmt.Errorf("u64 at %d: %w", c.off, ErrUnexpectedEnd)
	}
	v := buf.U64BE(c.b[c.off:])
	c.off += 8
	return v, nil
}

// Slice returns a zero-copy view of the next n bytes and advances past them.
func (c *Cursor) Slice(n int) ([]byte, error) {
	s, ok := buf.Slice(c.b, c.off, n)
	if !ok {
		return nil, fmt.Errorf("%d bytes at %d: %w", n, c.off, ErrUnexpectedEnd)
	}
	c.off += n
	return s, nil
}

// AlignTo advances the position to the next multiple of align (a power of
// two). Failing past the end of the buffer is a truncation, not a plain
// short read: the format mandates the padding bytes exist.
func (c *Cursor) AlignTo(align int) error {
	next := format.AlignTo(c.off, align)
	if next > len(c.b) {
		return fmt.Errorf("align %d at %d: %w", align, c.off, ErrTruncated)
	}
	c.off = next
	return nil
}

// ReadCString reads a NUL-terminated string starting at the current position
// and advances past the terminator. The returned string excludes the NUL.
func (c *Cursor) ReadCString() (string, error) {
	i := bytes.IndexByte(c.b[c.off:], 0)
	if i < 0 {
		return "", fmt.Errorf("string at %d: %w", c.off, ErrUnterminatedString)
	}
	s := string(c.b[c.off : c.off+i])
	c.off += i + 1
	return s, nil
}
