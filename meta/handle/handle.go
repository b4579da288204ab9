// Package handle guards access to reference-counted resources owned by a
// host registry. A Handle pins one reference on a resource address; the
// reference is dropped exactly once, no matter how many goroutines race to
// release it.
package handle

import (
	"errors"
	"runtime"
	"sync/atomic"
)

// Address identifies a resource inside a Registry. Null is the invalid
// address.
type Address uintptr

// Null is the address of no resource.
const Null Address = 0

// Registry is the host side of a handle: it owns the resources and their
// reference counts.
type Registry interface {
	IncRef(addr Address)
	DecRef(addr Address)
}

var (
	// ErrBorrowedIncRef indicates a request to take a reference through a
	// handle that would never give it back.
	ErrBorrowedIncRef = errors.New("handle: non-owning handle cannot increment the reference count")

	// ErrNilRegistry indicates a non-null address without a registry.
	ErrNilRegistry = errors.New("handle: nil registry")
)

// state is everything the cleanup needs; it must not point back to the
// Handle or the Handle would never become unreachable.
type state struct {
	addr atomic.Uintptr
	reg  Registry
	owns bool
}

// release swaps the address to Null; only the caller that observed the old
// non-null address drops the reference.
func (s *state) release() bool {
	prev := Address(s.addr.Swap(uintptr(Null)))
	if prev == Null {
		return false
	}
	if s.owns {
		s.reg.DecRef(prev)
	}
	return true
}

// Handle is an owning or borrowed reference to a registry resource.
type Handle struct {
	s       *state
	cleanup runtime.Cleanup
	tracked bool
}

// New wraps addr. With incRef the registry's count is incremented first,
// which is only legal for owning handles. An owning handle that is dropped
// without Release is released once when it is garbage collected; borrowed
// handles never touch the count.
func New(reg Registry, addr Address, incRef, owns bool) (*Handle, error) {
	if incRef && !owns {
		return nil, ErrBorrowedIncRef
	}
	if reg == nil && addr != Null {
		return nil, ErrNilRegistry
	}
	if incRef && addr != Null {
		reg.IncRef(addr)
	}
	return wrap(reg, addr, owns), nil
}

// NewInvalid returns a handle on Null. It holds no reference.
func NewInvalid(reg Registry) *Handle {
	return wrap(reg, Null, true)
}

func wrap(reg Registry, addr Address, owns bool) *Handle {
	h := &Handle{s: &state{reg: reg, owns: owns}}
	h.s.addr.Store(uintptr(addr))
	if owns && addr != Null {
		h.cleanup = runtime.AddCleanup(h, func(s *state) { s.release() }, h.s)
		h.tracked = true
	}
	return h
}

// Use takes a reference on addr for the duration of fn. The reference is
// released after fn returns, so fn may read the resource but must not
// retain it.
func Use(reg Registry, addr Address, fn func(Address) error) error {
	h, err := New(reg, addr, true, true)
	if err != nil {
		return err
	}
	defer h.Release()
	return fn(h.Address())
}

// Clone takes another reference and returns a new owning handle on the
// same address. The caller must hold h (or another live handle on the
// resource) so the resource cannot be freed between read and increment.
func (h *Handle) Clone() *Handle {
	addr := h.Address()
	if addr != Null {
		h.s.reg.IncRef(addr)
	}
	return wrap(h.s.reg, addr, true)
}

// Release drops the handle's reference. It reports whether this call did
// the release; later calls and concurrent losers get false.
func (h *Handle) Release() bool {
	released := h.s.release()
	if h.tracked {
		h.cleanup.Stop()
	}
	return released
}

// Close implements io.Closer.
func (h *Handle) Close() error {
	h.Release()
	return nil
}

// Address returns the wrapped address, or Null once released.
func (h *Handle) Address() Address {
	return Address(h.s.addr.Load())
}

// IsInvalid reports whether the handle points at Null.
func (h *Handle) IsInvalid() bool {
	return h.Address() == Null
}

// Owns reports whether releasing the handle decrements the count.
func (h *Handle) Owns() bool {
	return h.s.owns
}
