package fdt

import (
	"bytes"
	"encoding/binary"

	"github.com/joshuapare/fdtkit/internal/format"
)

// blobBuilder assembles syntactically valid (or deliberately broken) DTBs
// for tests: header, reservation block, structure block, strings block, in
// that order. Property name strings are deduplicated like real compilers do.
type blobBuilder struct {
	version     uint32
	lastComp    uint32
	reservation bytes.Buffer
	structB     bytes.Buffer
	stringsB    bytes.Buffer
	strOffs     map[string]uint32
	noSentinel  bool
}

func newBlobBuilder() *blobBuilder {
	return &blobBuilder{version: 17, lastComp: 16, strOffs: map[string]uint32{}}
}

func (bb *blobBuilder) writeU32(w *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

func (bb *blobBuilder) writeU64(w *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.Write(b[:])
}

func (bb *blobBuilder) pad4(w *bytes.Buffer) {
	for w.Len()%4 != 0 {
		w.WriteByte(0)
	}
}

func (bb *blobBuilder) reserve(addr, size uint64) *blobBuilder {
	bb.writeU64(&bb.reservation, addr)
	bb.writeU64(&bb.reservation, size)
	return bb
}

func (bb *blobBuilder) beginNode(name string) *blobBuilder {
	bb.writeU32(&bb.structB, format.TokenBeginNode)
	bb.structB.WriteString(name)
	bb.structB.WriteByte(0)
	bb.pad4(&bb.structB)
	return bb
}

func (bb *blobBuilder) endNode() *blobBuilder {
	bb.writeU32(&bb.structB, format.TokenEndNode)
	return bb
}

func (bb *blobBuilder) nop() *blobBuilder {
	bb.writeU32(&bb.structB, format.TokenNop)
	return bb
}

func (bb *blobBuilder) end() *blobBuilder {
	bb.writeU32(&bb.structB, format.TokenEnd)
	return bb
}

func (bb *blobBuilder) rawToken(tag uint32) *blobBuilder {
	bb.writeU32(&bb.structB, tag)
	return bb
}

func (bb *blobBuilder) stringOffset(name string) uint32 {
	off, ok := bb.strOffs[name]
	if !ok {
		off = uint32(bb.stringsB.Len())
		bb.stringsB.WriteString(name)
		bb.stringsB.WriteByte(0)
		bb.strOffs[name] = off
	}
	return off
}

func (bb *blobBuilder) prop(name string, value []byte) *blobBuilder {
	return bb.propAt(bb.stringOffset(name), value)
}

// propAt emits an FDT_PROP with an explicit name offset, for tests that
// need a bogus one.
func (bb *blobBuilder) propAt(nameOff uint32, value []byte) *blobBuilder {
	bb.writeU32(&bb.structB, format.TokenProp)
	bb.writeU32(&bb.structB, uint32(len(value)))
	bb.writeU32(&bb.structB, nameOff)
	bb.structB.Write(value)
	bb.pad4(&bb.structB)
	return bb
}

// propLying emits an FDT_PROP declaring declaredLen but writing only the
// given bytes, to simulate a value truncated mid-stream.
func (bb *blobBuilder) propLying(name string, declaredLen uint32, value []byte) *blobBuilder {
	bb.writeU32(&bb.structB, format.TokenProp)
	bb.writeU32(&bb.structB, declaredLen)
	bb.writeU32(&bb.structB, bb.stringOffset(name))
	bb.structB.Write(value)
	return bb
}

func (bb *blobBuilder) build() []byte {
	var rsv bytes.Buffer
	rsv.Write(bb.reservation.Bytes())
	if !bb.noSentinel {
		bb.writeU64(&rsv, 0)
		bb.writeU64(&rsv, 0)
	}
	structOff := format.HeaderSize + rsv.Len()
	stringsOff := structOff + bb.structB.Len()
	total := stringsOff + bb.stringsB.Len()

	out := make([]byte, total)
	putU32 := func(off int, v uint32) { binary.BigEndian.PutUint32(out[off:], v) }
	putU32(format.MagicOffset, format.Magic)
	putU32(format.TotalSizeOffset, uint32(total))
	putU32(format.StructOffsetOffset, uint32(structOff))
	putU32(format.StringsOffsetOffset, uint32(stringsOff))
	putU32(format.MemRsvmapOffsetOffset, format.HeaderSize)
	putU32(format.VersionOffset, bb.version)
	putU32(format.LastCompVersionOffset, bb.lastComp)
	putU32(format.BootCPUIDPhysOffset, 0)
	putU32(format.StringsSizeOffset, uint32(bb.stringsB.Len()))
	putU32(format.StructSizeOffset, uint32(bb.structB.Len()))

	copy(out[format.HeaderSize:], rsv.Bytes())
	copy(out[structOff:], bb.structB.Bytes())
	copy(out[stringsOff:], bb.stringsB.Bytes())
	return out
}

// minimalBlob is the smallest interesting well-formed blob: an empty
// reservation list and a root node with a single compatible property.
func minimalBlob() []byte {
	return newBlobBuilder().
		beginNode("").
		prop("compatible", []byte("foo\x00")).
		endNode().
		end().
		build()
}
