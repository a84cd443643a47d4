//go:build !linux && !darwin

package fdt

import (
	"fmt"
	"os"
)

// Open loads a DTB file into memory on platforms without mmap support and
// validates its header. Close is a no-op for these blobs.
func Open(path string, opts Options) (*Blob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty dtb file: %s", path)
	}
	return FromBytes(data, opts)
}
