package types

// Limits bound what the container decoders accept before they touch any
// section data. Values far outside these ranges only occur in corrupt or
// hostile files.
type Limits struct {
	// MaxHeaders is the maximum header directory length.
	MaxHeaders int

	// MaxHeaderSize is the maximum header record stride in bytes.
	MaxHeaderSize int

	// MaxSectionSize is the maximum size of one section in bytes.
	MaxSectionSize int

	// MaxPathLen is the maximum length of the embedded path in bytes.
	MaxPathLen int
}

const (
	// DefaultMaxHeaders is far above the five section types TexTools writes.
	// The directory is also bounds-checked against the buffer.
	DefaultMaxHeaders = 1 << 12

	// DefaultMaxHeaderSize allows generous forward-compatible header growth.
	DefaultMaxHeaderSize = 1 << 10

	// DefaultMaxSectionSize is far above the largest IMC section (1,024
	// variants of 6 bytes per slot).
	DefaultMaxSectionSize = 1 << 20

	// DefaultMaxPathLen is the longest game path the decoder accepts.
	DefaultMaxPathLen = 1 << 10
)

// DefaultLimits returns limits suitable for every file TexTools produces.
func DefaultLimits() Limits {
	return Limits{
		MaxHeaders:     DefaultMaxHeaders,
		MaxHeaderSize:  DefaultMaxHeaderSize,
		MaxSectionSize: DefaultMaxSectionSize,
		MaxPathLen:     DefaultMaxPathLen,
	}
}

// RelaxedLimits disables the sanity bounds; only buffer bounds apply. Every
// file the container format can express decodes under these limits.
func RelaxedLimits() Limits {
	return Limits{}
}
