// Package buf contains helpers for endian-safe decoding routines.
//
// The flattened devicetree format stores every multi-byte integer in
// big-endian byte order, so only big-endian readers live here.
package buf

import "encoding/binary"

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// U64BE reads a big-endian uint64 from b. Returns 0 when b is too short.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// PutU32BE writes v into b at off in big-endian order. No-op when b is too
// short; intended for assembling blobs in tests, not for production writes.
func PutU32BE(b []byte, off int, v uint32) {
	if off < 0 || off+4 > len(b) {
		return
	}
	binary.BigEndian.PutUint32(b[off:], v)
}

// PutU64BE writes v into b at off in big-endian order. No-op when b is too short.
func PutU64BE(b []byte, off int, v uint64) {
	if off < 0 || off+8 > len(b) {
		return
	}
	binary.BigEndian.PutUint64(b[off:], v)
}
