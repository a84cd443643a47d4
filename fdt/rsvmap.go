package fdt

import (
	"fmt"
	"io"
)

// Reservation is one reserved physical memory range handed to the client
// before it may touch RAM: an address and a size in bytes.
type Reservation struct {
	Address uint64
	Size    uint64
}

// ReservationIterator walks the memory reservation block lazily. The block
// is a run of (address, size) pairs terminated by an all-zero entry.
type ReservationIterator struct {
	cur  *Cursor
	done bool
}

// Next returns the next reservation or io.EOF at the (0,0) sentinel.
// Truncated bytes before the sentinel fail with ErrTruncated.
func (it *ReservationIterator) Next() (Reservation, error) {
	if it.done {
		return Reservation{}, io.EOF
	}
	addr, err := it.cur.ReadU64()
	if err != nil {
		it.done = true
		return Reservation{}, fmt.Errorf("reservation entry: %w", ErrTruncated)
	}
	size, err := it.cur.ReadU64()
	if err != nil {
		it.done = true
		return Reservation{}, fmt.Errorf("reservation entry: %w", ErrTruncated)
	}
	if addr == 0 && size == 0 {
		it.done = true
		return Reservation{}, io.EOF
	}
	return Reservation{Address: addr, Size: size}, nil
}

// Collect drains the iterator into a slice.
func (it *ReservationIterator) Collect() ([]Reservation, error) {
	var out []Reservation
	for {
		r, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
}
