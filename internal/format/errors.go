package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadCount indicates a count or size field is negative or implausible.
	ErrBadCount = errors.New("format: malformed count")
	// ErrBadLength indicates a section length does not match its record layout.
	ErrBadLength = errors.New("format: unexpected section length")
	// ErrUnsupported indicates a version or variant the decoder does not handle.
	ErrUnsupported = errors.New("format: unsupported feature")
)
