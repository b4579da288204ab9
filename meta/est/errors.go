package est

import "errors"

var (
	// ErrInvalidSnapshot indicates a default snapshot that does not hold a
	// well-formed table.
	ErrInvalidSnapshot = errors.New("est: invalid default snapshot")

	// ErrInvalidGrowth indicates a growth block smaller than one entry.
	ErrInvalidGrowth = errors.New("est: growth block smaller than one entry")

	// ErrCorrupt indicates the table's count no longer fits its buffer.
	ErrCorrupt = errors.New("est: table count exceeds buffer")

	// ErrDuplicateKey indicates Encode was given the same key twice.
	ErrDuplicateKey = errors.New("est: duplicate key")
)
