// Package format houses the byte layouts shared by the metadata table engine
// and the legacy container decoders. All multi-byte fields are
// little-endian. Keeping the offsets here lets the higher-level packages
// stay free of magic numbers.
package format

// ============================================================================
// EST table (skeleton overrides)
// ============================================================================
// Layout:
//
//	0x00  Count        u32
//	0x04  Count x [PrimaryId u16][GenderRace u16]   sorted by (GenderRace, PrimaryId)
//	....  Count x [SkeletonId u16]                  index-aligned with the descriptors
const (
	EstCountOffset = 0x00
	EstCountSize   = 4
	EstHeaderSize  = EstCountOffset + EstCountSize

	// EstDescriptorSize is the size of one key descriptor.
	EstDescriptorSize = 4
	// EstDescIDOffset and EstDescGenderRaceOffset locate the key fields
	// within a descriptor.
	EstDescIDOffset         = 0
	EstDescGenderRaceOffset = 2

	// EstValueSize is the size of one skeleton id payload.
	EstValueSize = 2

	// EstEntrySize is the number of bytes one entry adds to the table.
	EstEntrySize = EstDescriptorSize + EstValueSize

	// EstGrowBlock is the default number of bytes added when an insert
	// does not fit into the current allocation.
	EstGrowBlock = 512
)

// EstSize returns the logical size of an EST table holding count entries.
func EstSize(count int) int {
	return EstHeaderSize + count*EstEntrySize
}

// EstDescOffset returns the offset of descriptor idx.
func EstDescOffset(idx int) int {
	return EstHeaderSize + idx*EstDescriptorSize
}

// EstValueOffset returns the offset of value idx in a table holding count entries.
func EstValueOffset(count, idx int) int {
	return EstHeaderSize + count*EstDescriptorSize + idx*EstValueSize
}

// ============================================================================
// TexTools .meta container
// ============================================================================
// Prologue (sequential):
//
//	Version      u32
//	Path         NUL-terminated bytes
//	NumHeaders   u32
//	HeaderSize   u32
//	HeaderStart  u32
//
// Header record at HeaderStart + i*HeaderSize:
//
//	0x00  Type    u32
//	0x04  Offset  u32
//	0x08  Size    i32
//	0x0C  reserved up to HeaderSize
const (
	MetaHeaderTypeOffset   = 0x00
	MetaHeaderOffsetOffset = 0x04
	MetaHeaderSizeOffset   = 0x08

	// MetaHeaderMinSize is the number of bytes of a header record the
	// decoder consumes. Larger strides are tolerated; the tail is skipped.
	MetaHeaderMinSize = 0x0C
)

// Sub-table record sizes.
const (
	// EqdpRecordSize is [GenderRace u32][bits u8].
	EqdpRecordSize = 5
	// EstRecordSize is [GenderRace u16][PrimaryId u16][SkeletonId u16].
	EstRecordSize = 6
	// ImcRecordSize is one 6-byte IMC entry.
	ImcRecordSize = 6
	// GmpRecordSize is [low u32][high u8].
	GmpRecordSize = 5

	// EqdpMaterialBit and EqdpModelBit are the flags of an EQDP record byte.
	EqdpMaterialBit = 0x01
	EqdpModelBit    = 0x02
)

// IMC entry field offsets.
const (
	ImcMaterialIDOffset          = 0
	ImcDecalIDOffset             = 1
	ImcAttributeAndSoundOffset   = 2
	ImcVfxIDOffset               = 4
	ImcMaterialAnimationIDOffset = 5
)

// ============================================================================
// RGSP racial scaling files
// ============================================================================
// v1: [SubRace-1 u8][Gender u8][values f32...]
// v2: [0xFF][Version u16][SubRace-1 u8][Gender u8][values f32...]
const (
	RgspV1Size       = 42
	RgspV2Size       = 45
	RgspVersionFlag  = 0xFF
	RgspV1HeaderSize = 2
	RgspV2HeaderSize = 5
	RgspMaleValues   = 4
	RgspFemaleValues = 10
)
