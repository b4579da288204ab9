//go:build linux

package mmfile

import (
	"errors"
	"fmt"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// prefault touches every page of a fresh mapping so a file truncated behind
// our back fails here with an error instead of a SIGBUS during a lookup.
//
// MADV_POPULATE_READ (Linux 5.14+) reports EFAULT for inaccessible pages.
// Older kernels fall back to reading one byte per page with panic-on-fault
// enabled.
func prefault(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Madvise(data, unix.MADV_POPULATE_READ)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EINVAL) && !errors.Is(err, unix.ENOSYS) {
		return fmt.Errorf("mmfile: populate: %w", err)
	}
	return touchPages(data)
}

func touchPages(data []byte) (retErr error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("mmfile: memory access fault: %v", r)
		}
	}()

	pageSize := unix.Getpagesize()
	var sink byte
	for i := 0; i < len(data); i += pageSize {
		sink ^= data[i]
	}
	sink ^= data[len(data)-1]
	_ = sink
	return nil
}
