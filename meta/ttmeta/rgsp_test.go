package ttmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/metapatch/meta/baseline"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/pkg/types"
)

func TestRgspV1Female(t *testing.T) {
	values := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	data := rgspFile(false, 0, uint8(types.Raen-1), 1, values...)
	require.Len(t, data, 42)

	b := baseline.New(nil, nil)
	b.SetRsp(types.Raen, types.RspFemaleMinSize, 1) // equal, dropped
	m := ParseRGSP("raen_female.rgsp", data, options(b, false))
	require.True(t, m.Valid())
	assert.Equal(t, uint32(1), m.Version)
	assert.Equal(t, "raen_female.rgsp", m.FilePath)
	assert.Equal(t, 9, m.Manipulations.Count(types.ManipRsp))

	v, ok := m.Manipulations.Rsp(manip.RspIdentifier{SubRace: types.Raen, Attribute: types.RspBustMaxZ})
	require.True(t, ok)
	assert.Equal(t, types.RspEntry(10), v)
}

func TestRgspV2Male(t *testing.T) {
	data := rgspFile(true, 2, uint8(types.Midlander-1), 0, 0.5, 1.5, 2.5, 3.5)
	require.Len(t, data, 45)

	m := ParseRGSP("mid.rgsp", data, options(nil, true))
	require.True(t, m.Valid())
	assert.Equal(t, uint32(2), m.Version)
	require.Equal(t, 4, m.Manipulations.Len())
	v, _ := m.Manipulations.Rsp(manip.RspIdentifier{SubRace: types.Midlander, Attribute: types.RspMaleMaxTail})
	assert.Equal(t, types.RspEntry(3.5), v)
}

func TestRgspInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", make([]byte, 41), ErrRgspLength},
		{"long", make([]byte, 46), ErrRgspLength},
		{"bad version", rgspFile(true, 3, 0, 0), ErrRgspVersion},
		{"bad sub race", rgspFile(false, 0, 16, 0), ErrRgspSubRace},
		{"bad gender", rgspFile(false, 0, 0, 2), ErrRgspGender},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseRGSP("x.rgsp", tt.data, options(nil, true))
			requireInvalid(t, m)
			assert.Equal(t, "RGSP", m.Diagnostic.Structure)

			d := newDecoder(tt.data, options(nil, true))
			_, err := d.rgsp(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRgspV2HeaderOn42Bytes(t *testing.T) {
	// A v2 header leaves room for nine values only, too few for a female file.
	data := rgspFile(false, 0, 0, 0)
	data[0] = 0xFF
	data[1], data[2] = 1, 0 // version 1
	data[3], data[4] = 0, 1 // Midlander, female
	m := ParseRGSP("x.rgsp", data, options(nil, true))
	requireInvalid(t, m)
}
