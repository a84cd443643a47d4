// Package format houses the low-level layout constants of the flattened
// devicetree (FDT/DTB) binary format. The goal is to keep the raw byte-level
// knowledge in one place, independent from the public API, so higher-level
// packages can orchestrate the data in a more ergonomic form.
package format

const (
	// Magic is the value of the first header field of every DTB,
	// stored big-endian: 0xd00dfeed.
	Magic = 0xd00dfeed

	// HeaderSize is the size of the fixed DTB header: ten big-endian
	// uint32 fields.
	HeaderSize = 40

	// MinSupportedVersion is the lowest structure-block version this
	// package understands. The format guarantees backward compatibility
	// only down to version 16.
	MinSupportedVersion = 16

	// TokenAlignment is the required alignment of every token in the
	// structure block.
	TokenAlignment = 4

	// ReserveEntrySize is the size of one memory reservation entry:
	// a u64 address followed by a u64 size.
	ReserveEntrySize = 16

	// ReserveAlignment is the required alignment of the memory
	// reservation block.
	ReserveAlignment = 8
)

// Header field offsets, in bytes from the start of the blob. All fields are
// big-endian uint32.
//
//	Offset  Field
//	------  -----------------
//	 0x00   magic
//	 0x04   totalsize
//	 0x08   off_dt_struct
//	 0x0C   off_dt_strings
//	 0x10   off_mem_rsvmap
//	 0x14   version
//	 0x18   last_comp_version
//	 0x1C   boot_cpuid_phys
//	 0x20   size_dt_strings
//	 0x24   size_dt_struct
const (
	MagicOffset           = 0x00
	TotalSizeOffset       = 0x04
	StructOffsetOffset    = 0x08
	StringsOffsetOffset   = 0x0C
	MemRsvmapOffsetOffset = 0x10
	VersionOffset         = 0x14
	LastCompVersionOffset = 0x18
	BootCPUIDPhysOffset   = 0x1C
	StringsSizeOffset     = 0x20
	StructSizeOffset      = 0x24
)

// Structure block token tags, stored as big-endian uint32 at 4-byte-aligned
// positions.
const (
	TokenBeginNode = 0x00000001
	TokenEndNode   = 0x00000002
	TokenProp      = 0x00000003
	TokenNop       = 0x00000004
	TokenEnd       = 0x00000009
)
