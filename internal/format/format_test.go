package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstOffsets(t *testing.T) {
	require.Equal(t, 4, EstSize(0))
	require.Equal(t, 16, EstSize(2))
	require.Equal(t, 4, EstDescOffset(0))
	require.Equal(t, 12, EstDescOffset(2))
	// Two entries: descriptors end at 12, values start there.
	require.Equal(t, 12, EstValueOffset(2, 0))
	require.Equal(t, 14, EstValueOffset(2, 1))
}

func TestEncodingRoundTrip(t *testing.T) {
	b := make([]byte, 8)
	PutU16(b, 0, 0xBEEF)
	PutU32(b, 2, 0xDEADC0DE)
	require.Equal(t, uint16(0xBEEF), ReadU16(b, 0))
	require.Equal(t, uint32(0xDEADC0DE), ReadU32(b, 2))

	PutI32(b, 4, -2)
	require.Equal(t, int32(-2), ReadI32(b, 4))
}

func TestDecodePath(t *testing.T) {
	got, err := DecodePath([]byte("chara/equipment/e0001/e0001_top.meta"))
	require.NoError(t, err)
	require.Equal(t, "chara/equipment/e0001/e0001_top.meta", got)

	// 0xE9 is 'é' in Windows-1252 and invalid as a lone UTF-8 byte.
	got, err = DecodePath([]byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	require.Equal(t, "café", got)
}
