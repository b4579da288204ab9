package ttmeta

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/metapatch/internal/buf"
	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/internal/logger"
	"github.com/joshuapare/metapatch/meta/gamepath"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/pkg/types"
)

// Status tells whether a file decoded.
type Status uint8

const (
	StatusValid Status = iota
	StatusInvalid
)

func (s Status) String() string {
	if s == StatusValid {
		return "Valid"
	}
	return "Invalid"
}

// Meta is the decoded form of one metadata file.
type Meta struct {
	Version       uint32
	FilePath      string
	Info          gamepath.FileInfo
	Manipulations *manip.Set
	Status        Status

	// Diagnostic describes why an invalid file was rejected.
	Diagnostic *types.Diagnostic

	// Warnings lists sections of a valid file that were skipped.
	Warnings []types.Diagnostic
}

// Valid reports whether the file decoded.
func (m *Meta) Valid() bool { return m.Status == StatusValid }

// Invalid returns an empty invalid result.
func Invalid() *Meta {
	return &Meta{Manipulations: manip.NewSet(), Status: StatusInvalid}
}

type header struct {
	typ    types.ManipulationType
	offset uint32
	size   int32
}

type decoder struct {
	r        *buf.Reader
	opts     Options
	defaults Defaults
	log      *slog.Logger

	info     gamepath.FileInfo
	path     string
	set      *manip.Set
	warnings []types.Diagnostic
}

func newDecoder(data []byte, opts Options) *decoder {
	d := &decoder{
		r:        buf.NewReader(data),
		opts:     opts,
		defaults: opts.Defaults,
		log:      logger.Or(opts.Logger),
		set:      manip.NewSet(),
	}
	if d.defaults == nil {
		d.defaults = zeroDefaults{}
	}
	if d.opts.Resolver == nil {
		d.opts.Resolver = gamepath.Default
	}
	return d
}

// Parse decodes a .meta container. It never returns nil.
func Parse(data []byte, opts Options) *Meta {
	d := newDecoder(data, opts)
	version, err := d.decode()
	if err != nil {
		d.log.Error("failed to parse .meta file", "path", d.path, "size", len(data), "error", err)
		m := Invalid()
		m.Version = version
		m.Diagnostic = diagnose(err, d.path)
		return m
	}
	d.log.Debug("parsed .meta file", "path", d.path, "version", version, "manipulations", d.set.Len())
	return &Meta{
		Version:       version,
		FilePath:      d.path,
		Info:          d.info,
		Manipulations: d.set,
		Status:        StatusValid,
		Warnings:      d.warnings,
	}
}

func (d *decoder) decode() (uint32, error) {
	version, err := d.r.U32()
	if err != nil {
		return 0, decodeErr("PROLOGUE", 0, err)
	}

	pathOff := d.r.Pos()
	raw, err := d.r.CString(d.opts.Limits.MaxPathLen)
	if err != nil {
		return version, decodeErr("PROLOGUE", pathOff, err)
	}
	d.path, err = format.DecodePath(raw)
	if err != nil {
		return version, decodeErr("PROLOGUE", pathOff, err)
	}
	d.info = d.opts.Resolver.Resolve(d.path)

	headers, err := d.readDirectory()
	if err != nil {
		return version, err
	}

	for _, typ := range types.ContainerTypes {
		h, ok := first(headers, typ)
		if !ok {
			continue
		}
		data, err := d.section(h)
		if err != nil {
			return version, err
		}
		if err := d.decodeSection(h, data); err != nil {
			return version, err
		}
	}
	return version, nil
}

func (d *decoder) readDirectory() ([]header, error) {
	dirOff := d.r.Pos()
	numHeaders, err := d.r.U32()
	if err != nil {
		return nil, decodeErr("PROLOGUE", dirOff, err)
	}
	headerSize, err := d.r.U32()
	if err != nil {
		return nil, decodeErr("PROLOGUE", dirOff+4, err)
	}
	headerStart, err := d.r.U32()
	if err != nil {
		return nil, decodeErr("PROLOGUE", dirOff+8, err)
	}

	lim := d.opts.Limits
	if lim.MaxHeaders > 0 && uint64(numHeaders) > uint64(lim.MaxHeaders) {
		return nil, decodeErr("PROLOGUE", dirOff, fmt.Errorf("%w: %d > %d", ErrTooManyHeaders, numHeaders, lim.MaxHeaders))
	}
	if numHeaders == 0 {
		return nil, nil
	}
	if headerSize < format.MetaHeaderMinSize ||
		(lim.MaxHeaderSize > 0 && uint64(headerSize) > uint64(lim.MaxHeaderSize)) {
		return nil, decodeErr("PROLOGUE", dirOff+4, fmt.Errorf("%w: %d", ErrHeaderSize, headerSize))
	}

	// The directory must fit before any record is read.
	if _, err := buf.CheckListBounds(d.r.Len(), int(headerStart), int(numHeaders), int(headerSize)); err != nil {
		return nil, decodeErr("HEADER", int(headerStart), fmt.Errorf("%w: %v", buf.ErrShortRead, err))
	}

	headers := make([]header, 0, numHeaders)
	for i := range int(numHeaders) {
		off := int(headerStart) + i*int(headerSize)
		if err := d.r.Seek(off); err != nil {
			return nil, decodeErr("HEADER", off, err)
		}
		typ, err := d.r.U32()
		if err != nil {
			return nil, decodeErr("HEADER", off, err)
		}
		secOff, err := d.r.U32()
		if err != nil {
			return nil, decodeErr("HEADER", off, err)
		}
		size, err := d.r.I32()
		if err != nil {
			return nil, decodeErr("HEADER", off, err)
		}
		headers = append(headers, header{typ: types.ManipulationType(typ), offset: secOff, size: size})
	}
	return headers, nil
}

func first(headers []header, typ types.ManipulationType) (header, bool) {
	for _, h := range headers {
		if h.typ == typ {
			return h, true
		}
	}
	return header{}, false
}

// section returns the bytes a header points at, without copying.
func (d *decoder) section(h header) ([]byte, error) {
	name := sectionName(h.typ)
	off := int(h.offset)
	if h.size < 0 {
		return nil, decodeErr(name, off, fmt.Errorf("%w: %d", ErrSectionSize, h.size))
	}
	if limit := d.opts.Limits.MaxSectionSize; limit > 0 && int(h.size) > limit {
		return nil, decodeErr(name, off, fmt.Errorf("%w: %d > %d", ErrSectionSize, h.size, limit))
	}
	if err := d.r.Seek(off); err != nil {
		return nil, decodeErr(name, off, err)
	}
	data, err := d.r.Bytes(int(h.size))
	if err != nil {
		return nil, decodeErr(name, off, err)
	}
	return data, nil
}

func sectionName(t types.ManipulationType) string {
	switch t {
	case types.ManipEqp:
		return "EQP"
	case types.ManipGmp:
		return "GMP"
	case types.ManipEqdp:
		return "EQDP"
	case types.ManipEst:
		return "EST"
	case types.ManipImc:
		return "IMC"
	case types.ManipRsp:
		return "RGSP"
	default:
		return "UNKNOWN"
	}
}

func (d *decoder) decodeSection(h header, data []byte) error {
	var err error
	switch h.typ {
	case types.ManipEqp:
		err = d.eqp(data)
	case types.ManipGmp:
		err = d.gmp(data)
	case types.ManipEqdp:
		d.eqdp(data)
	case types.ManipEst:
		d.est(data)
	case types.ManipImc:
		d.imc(data, int(h.offset))
	}
	if err != nil {
		return decodeErr(sectionName(h.typ), int(h.offset), err)
	}
	return nil
}
