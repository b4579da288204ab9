package ttmeta

import (
	"encoding/binary"
	"math"
)

// section is one typed block of a test container.
type section struct {
	typ  uint32
	size int32 // when non-zero, overrides len(data) in the header
	data []byte
}

// container lays out a .meta file: prologue, header directory with the
// given stride, then the section bodies in order.
func container(path string, stride int, secs ...section) []byte {
	var b []byte
	b = binary.LittleEndian.AppendUint32(b, 2) // version
	b = append(b, path...)
	b = append(b, 0)

	headerStart := len(b) + 12
	b = binary.LittleEndian.AppendUint32(b, uint32(len(secs)))
	b = binary.LittleEndian.AppendUint32(b, uint32(stride))
	b = binary.LittleEndian.AppendUint32(b, uint32(headerStart))

	dataStart := headerStart + len(secs)*stride
	off := dataStart
	for _, s := range secs {
		rec := make([]byte, max(stride, 12))
		size := s.size
		if size == 0 {
			size = int32(len(s.data))
		}
		binary.LittleEndian.PutUint32(rec[0:], s.typ)
		binary.LittleEndian.PutUint32(rec[4:], uint32(off))
		binary.LittleEndian.PutUint32(rec[8:], uint32(size))
		b = append(b, rec[:stride]...)
		off += len(s.data)
	}
	for _, s := range secs {
		b = append(b, s.data...)
	}
	return b
}

// trailingDirectory lays out a .meta file with the section bodies first and
// the header directory at the end of the file.
func trailingDirectory(path string, stride int, secs ...section) []byte {
	var b []byte
	b = binary.LittleEndian.AppendUint32(b, 2)
	b = append(b, path...)
	b = append(b, 0)

	dataStart := len(b) + 12
	headerStart := dataStart
	for _, s := range secs {
		headerStart += len(s.data)
	}
	b = binary.LittleEndian.AppendUint32(b, uint32(len(secs)))
	b = binary.LittleEndian.AppendUint32(b, uint32(stride))
	b = binary.LittleEndian.AppendUint32(b, uint32(headerStart))
	for _, s := range secs {
		b = append(b, s.data...)
	}

	off := dataStart
	for _, s := range secs {
		rec := make([]byte, max(stride, 12))
		binary.LittleEndian.PutUint32(rec[0:], s.typ)
		binary.LittleEndian.PutUint32(rec[4:], uint32(off))
		binary.LittleEndian.PutUint32(rec[8:], uint32(len(s.data)))
		b = append(b, rec[:stride]...)
		off += len(s.data)
	}
	return b
}

func estRecords(recs ...[3]uint16) []byte {
	var b []byte
	for _, r := range recs {
		for _, v := range r {
			b = binary.LittleEndian.AppendUint16(b, v)
		}
	}
	return b
}

type eqdpRec struct {
	gr   uint32
	bits byte
}

func eqdpRecords(recs ...eqdpRec) []byte {
	var b []byte
	for _, r := range recs {
		b = binary.LittleEndian.AppendUint32(b, r.gr)
		b = append(b, r.bits)
	}
	return b
}

func imcRecord(material, decal uint8, attr uint16, vfx, anim uint8) []byte {
	b := []byte{material, decal}
	b = binary.LittleEndian.AppendUint16(b, attr)
	return append(b, vfx, anim)
}

func gmpRecord(low uint32, high byte) []byte {
	return append(binary.LittleEndian.AppendUint32(nil, low), high)
}

func rgspFile(v2 bool, version uint16, subRaceMinusOne, gender byte, values ...float32) []byte {
	var b []byte
	if v2 {
		b = append(b, 0xFF)
		b = binary.LittleEndian.AppendUint16(b, version)
	}
	b = append(b, subRaceMinusOne, gender)
	for _, v := range values {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	size := 42
	if v2 {
		size = 45
	}
	for len(b) < size {
		b = append(b, 0)
	}
	return b
}
