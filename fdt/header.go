package fdt

import (
	"fmt"

	"github.com/joshuapare/fdtkit/internal/buf"
	"github.com/joshuapare/fdtkit/internal/format"
)

// Header is the fixed 40-byte DTB preamble: ten big-endian uint32 fields in
// declared order. Parsed once at entry and immutable thereafter.
type Header struct {
	Magic           uint32
	TotalSize       uint32
	StructOffset    uint32
	StringsOffset   uint32
	MemRsvmapOffset uint32
	Version         uint32
	LastCompVersion uint32
	BootCPUIDPhys   uint32
	StringsSize     uint32
	StructSize      uint32
}

// ParseHeader decodes and validates the DTB header at the start of b.
//
// Validation order matters for error reporting: magic first, then the size
// and version sanity checks, then the per-block offset/size bounds. All
// bounds are checked against the actual buffer length, not just TotalSize,
// so a lying header can never cause an out-of-range slice downstream.
func ParseHeader(b []byte) (Header, error) {
	cur := NewCursor(b)
	var h Header
	for _, f := range []*uint32{
		&h.Magic, &h.TotalSize, &h.StructOffset, &h.StringsOffset,
		&h.MemRsvmapOffset, &h.Version, &h.LastCompVersion,
		&h.BootCPUIDPhys, &h.StringsSize, &h.StructSize,
	} {
		v, err := cur.ReadU32()
		if err != nil {
			return Header{}, fmt.Errorf("header: %w", err)
		}
		*f = v
	}

	if h.Magic != format.Magic {
		return Header{}, fmt.Errorf("header: magic %#08x: %w", h.Magic, ErrBadMagic)
	}
	if int(h.TotalSize) > len(b) || h.TotalSize < format.HeaderSize {
		return Header{}, fmt.Errorf("header: totalsize %d vs buffer %d: %w", h.TotalSize, len(b), ErrTruncated)
	}
	if h.Version < format.MinSupportedVersion || h.LastCompVersion > h.Version {
		return Header{}, fmt.Errorf("header: version %d (last compatible %d): %w",
			h.Version, h.LastCompVersion, ErrUnsupportedVersion)
	}

	if h.StructOffset > h.TotalSize || !format.Aligned4(int(h.StructOffset)) ||
		!buf.CheckRegion(len(b), h.StructOffset, h.StructSize) {
		return Header{}, fmt.Errorf("header: struct block at %d+%d: %w",
			h.StructOffset, h.StructSize, ErrOffsetOutOfRange)
	}
	if h.StringsOffset > h.TotalSize || !format.Aligned4(int(h.StringsOffset)) ||
		!buf.CheckRegion(len(b), h.StringsOffset, h.StringsSize) {
		return Header{}, fmt.Errorf("header: strings block at %d+%d: %w",
			h.StringsOffset, h.StringsSize, ErrOffsetOutOfRange)
	}
	if h.MemRsvmapOffset > h.TotalSize ||
		int(h.MemRsvmapOffset)%format.ReserveAlignment != 0 {
		return Header{}, fmt.Errorf("header: reservation block at %d: %w",
			h.MemRsvmapOffset, ErrOffsetOutOfRange)
	}

	return h, nil
}

// structBlock returns the zero-copy structure block slice for h within b.
// Bounds were established by ParseHeader.
func (h Header) structBlock(b []byte) []byte {
	return b[h.StructOffset : h.StructOffset+h.StructSize]
}

// stringsBlock returns the zero-copy strings block slice for h within b.
func (h Header) stringsBlock(b []byte) []byte {
	return b[h.StringsOffset : h.StringsOffset+h.StringsSize]
}

// rsvmapBlock returns the zero-copy reservation block slice for h within b.
// The reservation block carries no size field; it runs to TotalSize and is
// terminated in-band by a (0,0) entry.
func (h Header) rsvmapBlock(b []byte) []byte {
	return b[h.MemRsvmapOffset:h.TotalSize]
}
