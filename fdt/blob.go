package fdt

import (
	"fmt"
)

// Blob is an opened DTB, backed by mmap (unix) or a byte slice. It holds
// the validated header plus zero-copy views of the three blocks; tree
// materialization is a separate, explicit step.
type Blob struct {
	data    []byte
	header  Header
	rsvmap  []byte
	structb []byte
	strings []byte
	opts    Options
	closer  func() error
}

// FromBytes validates the header of b and sections the blob. The buffer is
// borrowed, not copied; it must stay alive while the Blob (and, in
// zero-copy mode, any Tree built from it) is in use.
func FromBytes(b []byte, opts Options) (*Blob, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	log := opts.logger()
	log.Debug().
		Uint32("version", h.Version).
		Uint32("totalsize", h.TotalSize).
		Uint32("struct_size", h.StructSize).
		Uint32("strings_size", h.StringsSize).
		Msg("header validated")
	return &Blob{
		data:    b,
		header:  h,
		rsvmap:  h.rsvmapBlock(b),
		structb: h.structBlock(b),
		strings: h.stringsBlock(b),
		opts:    opts,
	}, nil
}

// Header returns the validated header.
func (bl *Blob) Header() Header { return bl.header }

// Bytes returns the underlying blob bytes.
func (bl *Blob) Bytes() []byte { return bl.data }

// Strings returns the blob's string table.
func (bl *Blob) Strings() StringTable { return NewStringTable(bl.strings) }

// Reservations returns a fresh iterator over the memory reservation block.
// Each call restarts from the first entry.
func (bl *Blob) Reservations() *ReservationIterator {
	return &ReservationIterator{cur: NewCursor(bl.rsvmap)}
}

// Tokens returns a fresh tokenizer over the structure block. Most callers
// want Tree instead; the tokenizer is exposed for tooling that needs the
// raw token stream.
func (bl *Blob) Tokens() *Tokenizer {
	return NewTokenizer(bl.structb)
}

// Tree materializes the node/property arena from the structure block.
// Parsing the same blob twice yields identical trees; a failure anywhere
// aborts the whole build and no partial tree is ever returned.
func (bl *Blob) Tree() (*Tree, error) {
	t, err := buildTree(bl.Tokens(), bl.Strings(), bl.opts)
	if err != nil {
		return nil, fmt.Errorf("structure block: %w", err)
	}
	log := bl.opts.logger()
	log.Debug().Int("nodes", t.NumNodes()).Int("properties", t.NumProperties()).Msg("tree built")
	return t, nil
}

// Close releases the backing mapping when the blob was opened from a file;
// it is a no-op for FromBytes blobs.
func (bl *Blob) Close() error {
	if bl.closer == nil {
		return nil
	}
	c := bl.closer
	bl.closer = nil
	bl.data, bl.rsvmap, bl.structb, bl.strings = nil, nil, nil, nil
	return c()
}

// Parse is the one-shot convenience: header validation plus tree build.
func Parse(b []byte, opts Options) (*Tree, error) {
	bl, err := FromBytes(b, opts)
	if err != nil {
		return nil, err
	}
	return bl.Tree()
}
