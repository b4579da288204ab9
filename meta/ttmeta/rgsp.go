package ttmeta

import (
	"fmt"

	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/pkg/types"
)

// ParseRGSP decodes a racial scaling file. path is recorded as the file
// path; the file itself does not name one. Like Parse it never returns nil.
func ParseRGSP(path string, data []byte, opts Options) *Meta {
	d := newDecoder(data, opts)
	d.path = path
	version, err := d.rgsp(data)
	if err != nil {
		d.log.Error("failed to parse .rgsp file", "path", path, "size", len(data), "error", err)
		m := Invalid()
		m.Version = version
		m.Diagnostic = diagnose(err, path)
		return m
	}
	return &Meta{
		Version:       version,
		FilePath:      path,
		Manipulations: d.set,
		Status:        StatusValid,
	}
}

// rgsp reads
//
//	v1: [SubRace-1 u8][Gender u8][f32...]
//	v2: [0xFF][Version u16][SubRace-1 u8][Gender u8][f32...]
//
// Male files carry four values, female files ten.
func (d *decoder) rgsp(data []byte) (uint32, error) {
	if len(data) != format.RgspV1Size && len(data) != format.RgspV2Size {
		return 0, decodeErr("RGSP", -1, fmt.Errorf("%w: %d", ErrRgspLength, len(data)))
	}

	r := d.r
	flag, err := r.U8()
	if err != nil {
		return 0, decodeErr("RGSP", 0, err)
	}
	version := uint32(1)
	var sub uint8
	if flag == format.RgspVersionFlag {
		v, err := r.U16()
		if err != nil {
			return 0, decodeErr("RGSP", 1, err)
		}
		version = uint32(v)
		if version != 1 && version != 2 {
			return version, decodeErr("RGSP", 1, fmt.Errorf("%w: %d", ErrRgspVersion, version))
		}
		if sub, err = r.U8(); err != nil {
			return version, decodeErr("RGSP", 3, err)
		}
	} else {
		sub = flag
	}
	subRace := types.SubRace(sub + 1)
	if !subRace.IsValid() {
		return version, decodeErr("RGSP", r.Pos()-1, fmt.Errorf("%w: %d", ErrRgspSubRace, sub))
	}

	genderOff := r.Pos()
	gender, err := r.U8()
	if err != nil {
		return version, decodeErr("RGSP", genderOff, err)
	}
	var attrs []types.RspAttribute
	switch gender {
	case 0:
		attrs = types.MaleRspAttributes[:]
	case 1:
		attrs = types.FemaleRspAttributes[:]
	default:
		return version, decodeErr("RGSP", genderOff, fmt.Errorf("%w: %d", ErrRgspGender, gender))
	}

	for _, attr := range attrs {
		off := r.Pos()
		f, err := r.F32()
		if err != nil {
			return version, decodeErr("RGSP", off, fmt.Errorf("%s: %w", attr, err))
		}
		value := types.RspEntry(f)
		if d.keep(value == d.defaults.Rsp(subRace, attr)) {
			d.set.AddRsp(manip.RspIdentifier{SubRace: subRace, Attribute: attr}, value)
		}
	}
	return version, nil
}
