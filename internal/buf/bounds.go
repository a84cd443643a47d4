package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// CheckRegion validates that a region of size bytes starting at off fits in a
// buffer of bufLen bytes. Offsets and sizes arrive from untrusted headers as
// uint32, so the check is done in uint64 space to avoid overflow.
func CheckRegion(bufLen int, off, size uint32) bool {
	if bufLen < 0 {
		return false
	}
	return uint64(off)+uint64(size) <= uint64(bufLen)
}
