package est

import (
	"fmt"
	"slices"

	"github.com/joshuapare/metapatch/internal/buf"
	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/pkg/types"
)

// Validate checks that data holds a well-formed table: a non-negative
// count whose entries fit in data, with strictly ascending descriptors and
// no zero values. Bytes beyond the logical end are allowed but must be
// zero.
func Validate(data []byte) error {
	count, err := bounds(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	for i := 1; i < count; i++ {
		if prev, cur := keyAt(data, i-1), keyAt(data, i); prev.Compare(cur) >= 0 {
			return fmt.Errorf("%w: descriptor %d (%s) not above %d (%s)", ErrInvalidSnapshot, i, cur, i-1, prev)
		}
	}
	for i := range count {
		if valueAt(data, count, i) == types.EstZero {
			return fmt.Errorf("%w: zero value stored for %s", ErrInvalidSnapshot, keyAt(data, i))
		}
	}
	end := format.EstSize(count)
	if i := slices.IndexFunc(data[end:], func(b byte) bool { return b != 0 }); i >= 0 {
		return fmt.Errorf("%w: non-zero byte at %d past logical end %d", ErrInvalidSnapshot, end+i, end)
	}
	return nil
}

// Lookup reads the skeleton id for (gr, id) from a raw table without
// copying it. Only the count is verified, so Lookup stays O(log n) on
// tables that were validated when they were loaded.
func Lookup(data []byte, gr types.GenderRace, id types.PrimaryID) (types.EstEntry, error) {
	count, err := bounds(data)
	if err != nil {
		return types.EstZero, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	idx, ok := search(data, count, Key{GenderRace: gr, ID: id})
	if !ok {
		return types.EstZero, nil
	}
	return valueAt(data, count, idx), nil
}

// Entries decodes every entry of a raw table.
func Entries(data []byte) ([]Entry, error) {
	count, err := bounds(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	out := make([]Entry, count)
	for i := range count {
		out[i] = Entry{Key: keyAt(data, i), Value: valueAt(data, count, i)}
	}
	return out, nil
}

// Encode builds a table from entries in any order. Zero values are
// dropped; duplicate keys are an error.
func Encode(entries []Entry) ([]byte, error) {
	live := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Value != types.EstZero {
			live = append(live, e)
		}
	}
	slices.SortFunc(live, func(a, b Entry) int { return a.Key.Compare(b.Key) })
	for i := 1; i < len(live); i++ {
		if live[i].Key == live[i-1].Key {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, live[i].Key)
		}
	}

	count := len(live)
	data := make([]byte, format.EstSize(count))
	format.PutI32(data, format.EstCountOffset, int32(count))
	for i, e := range live {
		putKey(data, i, e.Key)
		format.PutU16(data, format.EstValueOffset(count, i), uint16(e.Value))
	}
	return data, nil
}

func bounds(data []byte) (int, error) {
	if len(data) < format.EstHeaderSize {
		return 0, fmt.Errorf("need %d header bytes, have %d", format.EstHeaderSize, len(data))
	}
	count := int(format.ReadI32(data, format.EstCountOffset))
	if _, err := buf.CheckListBounds(len(data), format.EstHeaderSize, count, format.EstEntrySize); err != nil {
		return 0, err
	}
	return count, nil
}
