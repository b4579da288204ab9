package ttmeta

import (
	"errors"
	"fmt"

	"github.com/joshuapare/metapatch/pkg/types"
)

var (
	// ErrTooManyHeaders indicates a header count above Limits.MaxHeaders.
	ErrTooManyHeaders = errors.New("ttmeta: too many headers")

	// ErrHeaderSize indicates a header stride smaller than one record or
	// above Limits.MaxHeaderSize.
	ErrHeaderSize = errors.New("ttmeta: bad header size")

	// ErrSectionSize indicates a negative section size or one above
	// Limits.MaxSectionSize.
	ErrSectionSize = errors.New("ttmeta: bad section size")

	// ErrSlotLength indicates an EQP section whose length is not the width
	// of the file's slot.
	ErrSlotLength = errors.New("ttmeta: eqp section does not match slot width")

	// ErrRgspLength, ErrRgspVersion, ErrRgspSubRace and ErrRgspGender
	// reject malformed racial scaling files.
	ErrRgspLength  = errors.New("ttmeta: rgsp file has unexpected length")
	ErrRgspVersion = errors.New("ttmeta: unsupported rgsp version")
	ErrRgspSubRace = errors.New("ttmeta: invalid rgsp sub race")
	ErrRgspGender  = errors.New("ttmeta: invalid rgsp gender")
)

// DecodeError locates a failure inside a file.
type DecodeError struct {
	Structure string // "PROLOGUE", "HEADER", "EQP", ...
	Offset    int    // absolute offset, -1 when unknown
	Err       error
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("ttmeta: %s: %v", e.Structure, e.Err)
	}
	return fmt.Sprintf("ttmeta: %s at 0x%X: %v", e.Structure, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(structure string, off int, err error) error {
	return &DecodeError{Structure: structure, Offset: off, Err: err}
}

// diagnose turns a decode failure into the diagnostic attached to an
// invalid result.
func diagnose(err error, path string) *types.Diagnostic {
	d := &types.Diagnostic{
		Severity: types.SevError,
		Category: types.DiagStructure,
		Offset:   -1,
		Path:     path,
		Issue:    err.Error(),
	}
	var de *DecodeError
	if errors.As(err, &de) {
		d.Structure = de.Structure
		d.Offset = int64(de.Offset)
		d.Issue = de.Err.Error()
		switch de.Structure {
		case "PROLOGUE", "HEADER":
		default:
			d.Category = types.DiagData
		}
	}
	return d
}
