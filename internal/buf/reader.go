package buf

import (
	"errors"
	"fmt"
)

// ErrShortRead is the sentinel wrapped by every out-of-bounds read or seek.
var ErrShortRead = errors.New("buf: unexpected end of buffer")

// BoundsError records where a read fell outside the buffer.
type BoundsError struct {
	Off  int // absolute offset of the attempted read
	Need int // bytes requested
	Len  int // buffer length
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("buf: read of %d bytes at offset %d exceeds length %d", e.Need, e.Off, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrShortRead }

// Reader is a cursor over an in-memory buffer. Sequential reads advance the
// cursor; Seek repositions it absolutely. Every read is bounds checked and
// returns a *BoundsError instead of panicking.
type Reader struct {
	b   []byte
	off int
}

// NewReader returns a Reader positioned at offset 0.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Pos returns the current absolute offset.
func (r *Reader) Pos() int { return r.off }

// Len returns the total buffer length.
func (r *Reader) Len() int { return len(r.b) }

// Remaining returns the number of unread bytes after the cursor.
func (r *Reader) Remaining() int { return len(r.b) - r.off }

// Seek moves the cursor to the absolute offset off. Seeking to len(b) is
// allowed; anything beyond it is an error.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.b) {
		return &BoundsError{Off: off, Need: 0, Len: len(r.b)}
	}
	r.off = off
	return nil
}

func (r *Reader) take(n int) ([]byte, error) {
	s, ok := Slice(r.b, r.off, n)
	if !ok {
		return nil, &BoundsError{Off: r.off, Need: n, Len: len(r.b)}
	}
	r.off += n
	return s, nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	s, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	s, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return U16LE(s), nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	s, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return U32LE(s), nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	s, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return I32LE(s), nil
}

// F32 reads a little-endian float32.
func (r *Reader) F32() (float32, error) {
	s, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return F32LE(s), nil
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &BoundsError{Off: r.off, Need: n, Len: len(r.b)}
	}
	return r.take(n)
}

// CString reads bytes up to and including a NUL terminator and returns them
// without the terminator. A missing terminator, or one further than max
// bytes away when max > 0, is an error.
func (r *Reader) CString(maxLen int) ([]byte, error) {
	start := r.off
	for i := start; i < len(r.b); i++ {
		if r.b[i] == 0 {
			r.off = i + 1
			return r.b[start:i], nil
		}
		if maxLen > 0 && i-start >= maxLen {
			return nil, fmt.Errorf("buf: string at offset %d exceeds %d bytes", start, maxLen)
		}
	}
	return nil, &BoundsError{Off: len(r.b), Need: 1, Len: len(r.b)}
}
