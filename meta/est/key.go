package est

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/pkg/types"
)

// Key addresses one entry of the table.
type Key struct {
	GenderRace types.GenderRace `json:"gender_race"`
	ID         types.PrimaryID  `json:"id"`
}

// Compare orders keys by GenderRace, then ID.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.GenderRace, o.GenderRace); c != 0 {
		return c
	}
	return cmp.Compare(k.ID, o.ID)
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%04d", k.GenderRace, k.ID)
}

// Entry is a key with its skeleton id.
type Entry struct {
	Key   Key            `json:"key"`
	Value types.EstEntry `json:"value"`
}

func keyAt(data []byte, idx int) Key {
	off := format.EstDescOffset(idx)
	return Key{
		ID:         types.PrimaryID(format.ReadU16(data, off+format.EstDescIDOffset)),
		GenderRace: types.GenderRace(format.ReadU16(data, off+format.EstDescGenderRaceOffset)),
	}
}

func putKey(data []byte, idx int, k Key) {
	off := format.EstDescOffset(idx)
	format.PutU16(data, off+format.EstDescIDOffset, uint16(k.ID))
	format.PutU16(data, off+format.EstDescGenderRaceOffset, uint16(k.GenderRace))
}

func valueAt(data []byte, count, idx int) types.EstEntry {
	return types.EstEntry(format.ReadU16(data, format.EstValueOffset(count, idx)))
}

// search returns the position of k among the first count descriptors, or
// the insertion point when it is absent. The caller has verified that
// count descriptors fit in data.
func search(data []byte, count int, k Key) (int, bool) {
	idx := sort.Search(count, func(i int) bool {
		return keyAt(data, i).Compare(k) >= 0
	})
	return idx, idx < count && keyAt(data, idx) == k
}
