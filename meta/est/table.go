package est

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/joshuapare/metapatch/internal/buf"
	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/pkg/types"
)

// Change reports what Set did to the table.
type Change uint8

const (
	Unchanged Change = iota
	Changed
	Added
	Removed
)

func (c Change) String() string {
	switch c {
	case Unchanged:
		return "Unchanged"
	case Changed:
		return "Changed"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Table is an editable skeleton override table backed by an owned buffer.
type Table struct {
	data     []byte // allocated buffer; len(data) is the capacity
	defaults []byte // immutable snapshot restored by Reset
	grow     int
}

// Option configures a Table.
type Option func(*Table)

// WithGrowth sets the number of bytes added when an insert does not fit.
func WithGrowth(n int) Option {
	return func(t *Table) { t.grow = n }
}

// New builds a table holding a private copy of defaults, with one growth
// block of spare capacity. An invalid snapshot or growth block is a
// configuration error.
func New(defaults []byte, opts ...Option) (*Table, error) {
	t := &Table{grow: format.EstGrowBlock}
	for _, opt := range opts {
		opt(t)
	}
	if t.grow < format.EstEntrySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrowth, t.grow)
	}
	if err := t.Rebase(defaults); err != nil {
		return nil, err
	}
	return t, nil
}

// Rebase replaces the default snapshot, reallocates the buffer to the
// snapshot length plus one growth block, and resets the table.
func (t *Table) Rebase(defaults []byte) error {
	if err := Validate(defaults); err != nil {
		return err
	}
	t.defaults = slices.Clone(defaults)
	t.data = make([]byte, len(defaults)+t.grow)
	t.Reset()
	return nil
}

// Reset restores the default snapshot and zeroes the spare capacity.
func (t *Table) Reset() {
	n := copy(t.data, t.defaults)
	clear(t.data[n:])
}

// Count returns the number of live entries.
func (t *Table) Count() int {
	return int(format.ReadI32(t.data, format.EstCountOffset))
}

// Len returns the allocated buffer size in bytes.
func (t *Table) Len() int {
	return len(t.data)
}

// Size returns the logical table size in bytes.
func (t *Table) Size() int {
	return format.EstSize(t.Count())
}

// Get returns the skeleton id stored for (gr, id), or types.EstZero.
func (t *Table) Get(gr types.GenderRace, id types.PrimaryID) types.EstEntry {
	count := t.Count()
	if t.check(count) != nil {
		return types.EstZero
	}
	idx, ok := search(t.data, count, Key{GenderRace: gr, ID: id})
	if !ok {
		return types.EstZero
	}
	return valueAt(t.data, count, idx)
}

// Default returns the snapshot's skeleton id for (gr, id).
func (t *Table) Default(gr types.GenderRace, id types.PrimaryID) types.EstEntry {
	v, _ := Lookup(t.defaults, gr, id)
	return v
}

// Set stores v for (gr, id). A zero v removes the entry.
func (t *Table) Set(gr types.GenderRace, id types.PrimaryID, v types.EstEntry) (Change, error) {
	count := t.Count()
	if err := t.check(count); err != nil {
		return Unchanged, err
	}

	key := Key{GenderRace: gr, ID: id}
	idx, found := search(t.data, count, key)
	if found {
		off := format.EstValueOffset(count, idx)
		switch cur := types.EstEntry(format.ReadU16(t.data, off)); {
		case cur == v:
			return Unchanged, nil
		case v == types.EstZero:
			t.remove(count, idx)
			return Removed, nil
		default:
			format.PutU16(t.data, off, uint16(v))
			return Changed, nil
		}
	}

	if v == types.EstZero {
		return Unchanged, nil
	}
	t.insert(count, idx, key, v)
	return Added, nil
}

// check verifies that count entries fit in the buffer.
func (t *Table) check(count int) error {
	if _, err := buf.CheckListBounds(len(t.data), format.EstHeaderSize, count, format.EstEntrySize); err != nil {
		return fmt.Errorf("%w: count=%d: %v", ErrCorrupt, count, err)
	}
	return nil
}

// insert opens slot idx. Values at or after idx move up by a whole entry,
// values before it by one descriptor, descriptors at or after idx by one
// descriptor. Moves run highest region first so no source is overwritten
// before it is read.
func (t *Table) insert(count, idx int, key Key, v types.EstEntry) {
	if need := format.EstSize(count + 1); need > len(t.data) {
		size := len(t.data)
		for size < need {
			size += t.grow
		}
		grown := make([]byte, size)
		copy(grown, t.data)
		t.data = grown
	}

	d := t.data
	oldVals := format.EstValueOffset(count, 0)
	newVals := format.EstValueOffset(count+1, 0)
	const vs = format.EstValueSize

	copy(d[newVals+(idx+1)*vs:newVals+(count+1)*vs], d[oldVals+idx*vs:oldVals+count*vs])
	copy(d[newVals:newVals+idx*vs], d[oldVals:oldVals+idx*vs])
	format.PutU16(d, newVals+idx*vs, uint16(v))

	copy(d[format.EstDescOffset(idx+1):format.EstDescOffset(count+1)], d[format.EstDescOffset(idx):format.EstDescOffset(count)])
	putKey(d, idx, key)

	format.PutI32(d, format.EstCountOffset, int32(count+1))
}

// remove closes slot idx, mirroring insert: descriptors after idx move down
// one descriptor, values before idx by one descriptor, values after idx by a
// whole entry. The vacated tail is zeroed.
func (t *Table) remove(count, idx int) {
	d := t.data
	oldVals := format.EstValueOffset(count, 0)
	newVals := format.EstValueOffset(count-1, 0)
	const vs = format.EstValueSize

	copy(d[format.EstDescOffset(idx):format.EstDescOffset(count-1)], d[format.EstDescOffset(idx+1):format.EstDescOffset(count)])
	copy(d[newVals:newVals+idx*vs], d[oldVals:oldVals+idx*vs])
	copy(d[newVals+idx*vs:newVals+(count-1)*vs], d[oldVals+(idx+1)*vs:oldVals+count*vs])

	clear(d[format.EstSize(count-1):format.EstSize(count)])
	format.PutI32(d, format.EstCountOffset, int32(count-1))
}

// All yields the live entries in key order.
func (t *Table) All() iter.Seq2[Key, types.EstEntry] {
	return func(yield func(Key, types.EstEntry) bool) {
		count := t.Count()
		if t.check(count) != nil {
			return
		}
		for i := range count {
			if !yield(keyAt(t.data, i), valueAt(t.data, count, i)) {
				return
			}
		}
	}
}

// Bytes returns a copy of the logical table.
func (t *Table) Bytes() []byte {
	return slices.Clone(t.data[:t.Size()])
}

// WriteTo writes the logical table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.data[:t.Size()])
	return int64(n), err
}
