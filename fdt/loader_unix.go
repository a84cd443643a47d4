//go:build linux || darwin

package fdt

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open memory-maps a DTB file read-only and validates its header. The
// returned Blob must be closed to release the mapping; in zero-copy mode
// any Tree built from it is only valid until Close.
func Open(path string, opts Options) (*Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		return nil, fmt.Errorf("empty dtb file: %s", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(sz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	bl, err := FromBytes(data, opts)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}
	bl.closer = func() error { return unix.Munmap(data) }
	return bl, nil
}
