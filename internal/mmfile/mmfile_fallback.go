//go:build !unix && !windows

package mmfile

import (
	"fmt"
	"os"
)

// Map copies the file into memory on platforms without mmap. The cleanup
// drops the copy so callers see the same lifecycle as a real mapping.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: read %s: %w", path, err)
	}
	cleanup := func() error {
		data = nil
		return nil
	}
	return data, cleanup, nil
}
