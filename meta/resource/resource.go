// Package resource keeps reference-counted native buffers, such as
// memory-mapped baseline tables, behind synthetic addresses. A Table is a
// handle.Registry: handles increment and decrement the counts, and a
// resource is released exactly once when its count reaches zero.
package resource

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/joshuapare/metapatch/internal/logger"
	"github.com/joshuapare/metapatch/internal/mmfile"
	"github.com/joshuapare/metapatch/meta/handle"
)

// ErrUnknownAddress is returned for an address with no live resource.
var ErrUnknownAddress = errors.New("resource: unknown address")

// Closer releases the memory behind a resource.
type Closer func() error

type entry struct {
	name   string
	data   []byte
	closer Closer
	refs   atomic.Int32
}

// Table owns a set of resources.
type Table struct {
	mu      sync.RWMutex
	entries map[handle.Address]*entry
	next    uintptr
	log     *slog.Logger
}

// New returns an empty table. A nil logger uses the package logger.
func New(log *slog.Logger) *Table {
	return &Table{
		entries: make(map[handle.Address]*entry),
		next:    0x10,
		log:     logger.Or(log),
	}
}

// Register adds data under a fresh address with a reference count of one;
// that reference belongs to the caller. closer may be nil.
func (t *Table) Register(name string, data []byte, closer Closer) handle.Address {
	e := &entry{name: name, data: data, closer: closer}
	e.refs.Store(1)

	t.mu.Lock()
	addr := handle.Address(t.next)
	t.next += 0x10
	t.entries[addr] = e
	t.mu.Unlock()

	t.log.Debug("resource registered", "name", name, "addr", fmt.Sprintf("%#x", uintptr(addr)), "size", len(data))
	return addr
}

// MapFile maps path read-only and registers the mapping.
func (t *Table) MapFile(name, path string) (handle.Address, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return handle.Null, fmt.Errorf("resource: map %s: %w", path, err)
	}
	return t.Register(name, data, unmap), nil
}

func (t *Table) lookup(addr handle.Address) *entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[addr]
}

// IncRef adds a reference. Unknown addresses are logged and ignored.
func (t *Table) IncRef(addr handle.Address) {
	e := t.lookup(addr)
	if e == nil {
		t.log.Warn("incref on unknown resource", "addr", fmt.Sprintf("%#x", uintptr(addr)))
		return
	}
	e.refs.Add(1)
}

// DecRef drops a reference and frees the resource when it was the last.
func (t *Table) DecRef(addr handle.Address) {
	e := t.lookup(addr)
	if e == nil {
		t.log.Warn("decref on unknown resource", "addr", fmt.Sprintf("%#x", uintptr(addr)))
		return
	}
	switch n := e.refs.Add(-1); {
	case n == 0:
		t.free(addr, e)
	case n < 0:
		t.log.Error("resource reference count underflow", "name", e.name, "refs", n)
	}
}

// Unregister drops the caller's registration reference. It is DecRef with
// an error for unknown addresses.
func (t *Table) Unregister(addr handle.Address) error {
	if t.lookup(addr) == nil {
		return fmt.Errorf("%w: %#x", ErrUnknownAddress, uintptr(addr))
	}
	t.DecRef(addr)
	return nil
}

func (t *Table) free(addr handle.Address, e *entry) {
	t.mu.Lock()
	if t.entries[addr] == e {
		delete(t.entries, addr)
	}
	t.mu.Unlock()

	if e.closer != nil {
		if err := e.closer(); err != nil {
			t.log.Error("resource close failed", "name", e.name, "error", err)
			return
		}
	}
	t.log.Debug("resource freed", "name", e.name)
}

// Bytes returns the memory behind addr. The slice is valid only while the
// caller holds a reference.
func (t *Table) Bytes(addr handle.Address) ([]byte, error) {
	e := t.lookup(addr)
	if e == nil {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownAddress, uintptr(addr))
	}
	return e.data, nil
}

// Name returns the name addr was registered under.
func (t *Table) Name(addr handle.Address) string {
	if e := t.lookup(addr); e != nil {
		return e.name
	}
	return ""
}

// Refs returns the current count for addr, or 0 when it is not live.
func (t *Table) Refs(addr handle.Address) int {
	if e := t.lookup(addr); e != nil {
		return int(e.refs.Load())
	}
	return 0
}

// Len returns the number of live resources.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
