package est

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/pkg/types"
)

func mustEncode(t testing.TB, entries ...Entry) []byte {
	t.Helper()
	data, err := Encode(entries)
	require.NoError(t, err)
	return data
}

func emptySnapshot() []byte {
	return make([]byte, format.EstHeaderSize)
}

func e(gr types.GenderRace, id types.PrimaryID, v types.EstEntry) Entry {
	return Entry{Key: Key{GenderRace: gr, ID: id}, Value: v}
}

// requireInvariants checks sortedness, bounds and the zeroed tail.
func requireInvariants(t testing.TB, tbl *Table) {
	t.Helper()
	count := tbl.Count()
	require.GreaterOrEqual(t, count, 0)
	require.LessOrEqual(t, format.EstSize(count), tbl.Len())
	for i := 1; i < count; i++ {
		require.Negative(t, keyAt(tbl.data, i-1).Compare(keyAt(tbl.data, i)), "descriptors %d/%d out of order", i-1, i)
	}
	for i := range count {
		require.NotZero(t, valueAt(tbl.data, count, i), "zero value stored at %d", i)
	}
	tail := tbl.data[format.EstSize(count):]
	require.True(t, bytes.Equal(tail, make([]byte, len(tail))), "tail not zeroed")
}

func TestNewRejectsInvalidSnapshot(t *testing.T) {
	unsorted := mustEncode(t, e(types.MidlanderMale, 1, 5), e(types.MidlanderMale, 2, 6))
	// swap the two descriptors
	copy(unsorted[4:8], []byte{0x02, 0x00, 0x65, 0x00})
	copy(unsorted[8:12], []byte{0x01, 0x00, 0x65, 0x00})

	duplicate := mustEncode(t, e(types.MidlanderMale, 1, 5), e(types.MidlanderMale, 2, 6))
	copy(duplicate[8:12], duplicate[4:8])

	zeroValue := mustEncode(t, e(types.ElezenMale, 3, 9))
	copy(zeroValue[8:10], []byte{0, 0})

	dirtyTail := append(mustEncode(t, e(types.ElezenMale, 3, 9)), 0, 0, 0xff, 0xff)

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"short header", []byte{0, 0, 0}},
		{"negative count", []byte{0xff, 0xff, 0xff, 0xff}},
		{"count exceeds length", []byte{0x02, 0, 0, 0, 1, 0, 0x65, 0, 7, 0}},
		{"unsorted descriptors", unsorted},
		{"duplicate descriptors", duplicate},
		{"zero value", zeroValue},
		{"non-zero tail", dirtyTail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data)
			require.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestNewRejectsInvalidGrowth(t *testing.T) {
	_, err := New(emptySnapshot(), WithGrowth(format.EstEntrySize-1))
	require.ErrorIs(t, err, ErrInvalidGrowth)
}

func TestNewAllowsTrailingBytes(t *testing.T) {
	snap := append(mustEncode(t, e(types.ElezenMale, 3, 9)), 0, 0, 0, 0)
	tbl, err := New(snap)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Count())
	require.Equal(t, len(snap)+format.EstGrowBlock, tbl.Len())
	requireInvariants(t, tbl)
}

func TestRebaseRejectsZeroValueAndKeepsTable(t *testing.T) {
	tbl, err := New(mustEncode(t, e(types.ElezenMale, 3, 9)))
	require.NoError(t, err)

	snap := mustEncode(t, e(types.ElezenMale, 3, 9))
	copy(snap[8:10], []byte{0, 0})
	require.ErrorIs(t, tbl.Rebase(snap), ErrInvalidSnapshot)

	require.Equal(t, types.EstEntry(9), tbl.Get(types.ElezenMale, 3))
	change, err := tbl.Set(types.ElezenMale, 3, types.EstZero)
	require.NoError(t, err)
	require.Equal(t, Removed, change)
	require.Zero(t, tbl.Count())
	requireInvariants(t, tbl)
}

func TestSetLifecycle(t *testing.T) {
	tbl, err := New(emptySnapshot())
	require.NoError(t, err)

	change, err := tbl.Set(types.MidlanderMale, 101, 42)
	require.NoError(t, err)
	assert.Equal(t, Added, change)
	assert.Equal(t, types.EstEntry(42), tbl.Get(types.MidlanderMale, 101))
	assert.Equal(t, 1, tbl.Count())

	change, err = tbl.Set(types.MidlanderMale, 101, 43)
	require.NoError(t, err)
	assert.Equal(t, Changed, change)
	assert.Equal(t, types.EstEntry(43), tbl.Get(types.MidlanderMale, 101))

	change, err = tbl.Set(types.MidlanderMale, 101, 0)
	require.NoError(t, err)
	assert.Equal(t, Removed, change)
	assert.Equal(t, types.EstZero, tbl.Get(types.MidlanderMale, 101))
	assert.Equal(t, 0, tbl.Count())
	requireInvariants(t, tbl)
}

func TestSetZeroOnMissingKey(t *testing.T) {
	tbl, err := New(mustEncode(t, e(types.MiqoteFemale, 5, 1)))
	require.NoError(t, err)
	before := tbl.Bytes()

	change, err := tbl.Set(types.MiqoteFemale, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, Unchanged, change)
	assert.Equal(t, before, tbl.Bytes())
}

func TestSetCurrentValueLeavesBufferIdentical(t *testing.T) {
	tbl, err := New(mustEncode(t,
		e(types.MidlanderMale, 1, 11),
		e(types.HighlanderFemale, 7, 12),
		e(types.VieraFemale, 300, 13),
	))
	require.NoError(t, err)

	for k, v := range tbl.All() {
		before := slices.Clone(tbl.data)
		change, err := tbl.Set(k.GenderRace, k.ID, v)
		require.NoError(t, err)
		require.Equal(t, Unchanged, change)
		require.Equal(t, before, tbl.data)
	}
}

func TestByteExactLayout(t *testing.T) {
	tbl, err := New(emptySnapshot())
	require.NoError(t, err)

	_, err = tbl.Set(types.MidlanderMale, 2, 0x0A)
	require.NoError(t, err)
	_, err = tbl.Set(types.MidlanderMale, 1, 0x0B)
	require.NoError(t, err)
	_, err = tbl.Set(types.MidlanderFemale, 1, 0x0C)
	require.NoError(t, err)

	want := []byte{
		0x03, 0x00, 0x00, 0x00, // count
		0x01, 0x00, 0x65, 0x00, // id 1, gr 101
		0x02, 0x00, 0x65, 0x00, // id 2, gr 101
		0x01, 0x00, 0xC9, 0x00, // id 1, gr 201
		0x0B, 0x00, 0x0A, 0x00, 0x0C, 0x00, // values
	}
	require.Equal(t, want, tbl.Bytes())

	var out bytes.Buffer
	n, err := tbl.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, out.Bytes())

	// Remove the middle entry; the vacated 6 bytes must be zero again.
	_, err = tbl.Set(types.MidlanderMale, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x65, 0x00,
		0x01, 0x00, 0xC9, 0x00,
		0x0B, 0x00, 0x0C, 0x00,
	}, tbl.Bytes())
	requireInvariants(t, tbl)
}

func TestGrowthInFixedBlocks(t *testing.T) {
	const block = 12
	tbl, err := New(emptySnapshot(), WithGrowth(block))
	require.NoError(t, err)
	require.Equal(t, format.EstHeaderSize+block, tbl.Len())

	// Two entries fit exactly into the first block.
	_, err = tbl.Set(types.MidlanderMale, 1, 1)
	require.NoError(t, err)
	_, err = tbl.Set(types.MidlanderMale, 2, 2)
	require.NoError(t, err)
	require.Equal(t, format.EstHeaderSize+block, tbl.Len())

	_, err = tbl.Set(types.MidlanderMale, 3, 3)
	require.NoError(t, err)
	require.Equal(t, format.EstHeaderSize+2*block, tbl.Len())

	// Removal never shrinks.
	for id := types.PrimaryID(1); id <= 3; id++ {
		_, err = tbl.Set(types.MidlanderMale, id, 0)
		require.NoError(t, err)
	}
	require.Equal(t, 0, tbl.Count())
	require.Equal(t, format.EstHeaderSize+2*block, tbl.Len())
	requireInvariants(t, tbl)
}

func TestResetRestoresDefaults(t *testing.T) {
	defaults := []Entry{
		e(types.MidlanderMale, 10, 100),
		e(types.RoegadynFemale, 20, 200),
		e(types.AuRaMale, 30, 300),
	}
	tbl, err := New(mustEncode(t, defaults...))
	require.NoError(t, err)

	_, err = tbl.Set(types.MidlanderMale, 10, 0)
	require.NoError(t, err)
	_, err = tbl.Set(types.AuRaMale, 30, 7)
	require.NoError(t, err)
	for id := range types.PrimaryID(200) {
		_, err = tbl.Set(types.LalafellFemale, id+1, 5)
		require.NoError(t, err)
	}

	tbl.Reset()
	require.Equal(t, len(defaults), tbl.Count())
	for _, d := range defaults {
		require.Equal(t, d.Value, tbl.Get(d.Key.GenderRace, d.Key.ID))
		require.Equal(t, d.Value, tbl.Default(d.Key.GenderRace, d.Key.ID))
	}
	requireInvariants(t, tbl)

	first := slices.Clone(tbl.data)
	tbl.Reset()
	require.Equal(t, first, tbl.data, "Reset must be idempotent")
}

func TestRebase(t *testing.T) {
	big := make([]Entry, 0, 100)
	for i := range 100 {
		big = append(big, e(types.HrothgarMale, types.PrimaryID(i), 1))
	}
	tbl, err := New(mustEncode(t, big...))
	require.NoError(t, err)
	bigLen := tbl.Len()

	small := mustEncode(t, e(types.VieraMale, 1, 2))
	require.NoError(t, tbl.Rebase(small))
	require.Less(t, tbl.Len(), bigLen)
	require.Equal(t, 1, tbl.Count())
	require.Equal(t, types.EstEntry(2), tbl.Get(types.VieraMale, 1))

	require.ErrorIs(t, tbl.Rebase([]byte{1}), ErrInvalidSnapshot)
	require.Equal(t, 1, tbl.Count(), "failed rebase must keep the table")
}

func TestAllStopsEarly(t *testing.T) {
	tbl, err := New(mustEncode(t, e(types.MidlanderMale, 1, 1), e(types.MidlanderMale, 2, 2)))
	require.NoError(t, err)
	var seen int
	for range tbl.All() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

// TestRandomSequenceMatchesModel drives random add/update/remove sequences
// against a map and checks the table after every call.
func TestRandomSequenceMatchesModel(t *testing.T) {
	races := []types.GenderRace{types.MidlanderMale, types.MiqoteFemale, types.VieraMale, types.UnknownFemaleNpc}
	for seed := uint64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7919))
		tbl, err := New(emptySnapshot(), WithGrowth(format.EstEntrySize*3))
		require.NoError(t, err)
		model := map[Key]types.EstEntry{}

		for step := range 2000 {
			k := Key{GenderRace: races[rng.IntN(len(races))], ID: types.PrimaryID(rng.IntN(40))}
			v := types.EstEntry(rng.IntN(4))

			cur, exists := model[k]
			var want Change
			switch {
			case exists && cur == v:
				want = Unchanged
			case exists && v == 0:
				want = Removed
				delete(model, k)
			case exists:
				want = Changed
				model[k] = v
			case v == 0:
				want = Unchanged
			default:
				want = Added
				model[k] = v
			}

			countBefore := tbl.Count()
			got, err := tbl.Set(k.GenderRace, k.ID, v)
			require.NoError(t, err)
			require.Equal(t, want, got, "seed %d step %d key %s", seed, step, k)
			if got == Removed {
				require.Equal(t, countBefore-1, tbl.Count())
			}
			require.Equal(t, len(model), tbl.Count())
			requireInvariants(t, tbl)
		}

		for k, v := range model {
			require.Equal(t, v, tbl.Get(k.GenderRace, k.ID))
		}
		for k, v := range tbl.All() {
			require.Equal(t, model[k], v)
		}
	}
}

func FuzzSetSequence(f *testing.F) {
	f.Add([]byte{0x01, 0x02, 0x03, 0x01, 0x02, 0x00})
	f.Add([]byte{0xff, 0x00, 0x10, 0x7f, 0x80, 0x01, 0x00, 0x00, 0x00})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tbl, err := New(emptySnapshot(), WithGrowth(format.EstEntrySize))
		require.NoError(t, err)
		model := map[Key]types.EstEntry{}
		for i := 0; i+2 < len(ops); i += 3 {
			k := Key{GenderRace: types.GenderRace(ops[i] & 0x7), ID: types.PrimaryID(ops[i+1] & 0x1f)}
			v := types.EstEntry(ops[i+2] & 0x3)
			_, err := tbl.Set(k.GenderRace, k.ID, v)
			require.NoError(t, err)
			if v == 0 {
				delete(model, k)
			} else {
				model[k] = v
			}
		}
		require.Equal(t, len(model), tbl.Count())
		requireInvariants(t, tbl)
		for k, v := range model {
			require.Equal(t, v, tbl.Get(k.GenderRace, k.ID))
		}
	})
}
