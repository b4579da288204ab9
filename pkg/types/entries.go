package types

// EstEntry is a skeleton id. Zero means "no override".
type EstEntry uint16

// EstZero is the sentinel for an absent skeleton override.
const EstZero EstEntry = 0

// EqpEntry is the 64-bit equipment parameter word of one set id. Each
// armor slot owns a contiguous byte range of it.
type EqpEntry uint64

// EqpSlotRange returns the byte offset and width of slot inside an
// EqpEntry. ok is false for non-armor slots.
func EqpSlotRange(slot EquipSlot) (offset, width int, ok bool) {
	switch slot {
	case SlotBody:
		return 0, 2, true
	case SlotLegs:
		return 2, 1, true
	case SlotHands:
		return 3, 1, true
	case SlotFeet:
		return 4, 1, true
	case SlotHead:
		return 5, 3, true
	}
	return 0, 0, false
}

// EqpMask returns the bits of an EqpEntry owned by slot.
func EqpMask(slot EquipSlot) EqpEntry {
	off, width, ok := EqpSlotRange(slot)
	if !ok {
		return 0
	}
	return EqpEntry((uint64(1)<<(8*width))-1) << (8 * off)
}

// EqpFromSlotBytes places the little-endian bytes of one slot at the
// slot's position. ok is false when len(b) does not match the slot width.
func EqpFromSlotBytes(slot EquipSlot, b []byte) (EqpEntry, bool) {
	off, width, ok := EqpSlotRange(slot)
	if !ok || len(b) != width {
		return 0, false
	}
	var v uint64
	for i, c := range b {
		v |= uint64(c) << (8 * (off + i))
	}
	return EqpEntry(v), true
}

// EqdpEntry holds two bits (material, model) for each of the five slots of
// a gear category.
type EqdpEntry uint16

// EqdpShift returns the bit position of slot inside an EqdpEntry.
func EqdpShift(slot EquipSlot) (uint, bool) {
	switch slot {
	case SlotHead, SlotEars:
		return 0, true
	case SlotBody, SlotNeck:
		return 2, true
	case SlotHands, SlotWrists:
		return 4, true
	case SlotLegs, SlotRFinger:
		return 6, true
	case SlotFeet, SlotLFinger:
		return 8, true
	}
	return 0, false
}

// EqdpMask returns the bits of an EqdpEntry owned by slot.
func EqdpMask(slot EquipSlot) EqdpEntry {
	shift, ok := EqdpShift(slot)
	if !ok {
		return 0
	}
	return 0b11 << shift
}

// EqdpFromBits builds the entry for slot from its material and model flags.
func EqdpFromBits(slot EquipSlot, material, model bool) EqdpEntry {
	shift, ok := EqdpShift(slot)
	if !ok {
		return 0
	}
	var v EqdpEntry
	if material {
		v |= 1 << shift
	}
	if model {
		v |= 1 << (shift + 1)
	}
	return v
}

// GmpEntry is the visor/gimmick parameter word of a head piece. Only the
// low 40 bits are meaningful.
type GmpEntry uint64

// GmpFromParts joins the 32-bit low word and the high byte.
func GmpFromParts(low uint32, high uint8) GmpEntry {
	return GmpEntry(uint64(low) | uint64(high)<<32)
}

// Enabled reports the visor enable bit.
func (g GmpEntry) Enabled() bool { return g&1 != 0 }

// Animated reports the visor animation bit.
func (g GmpEntry) Animated() bool { return g&2 != 0 }

// RotationA, RotationB and RotationC are the 10-bit rotation fields.
func (g GmpEntry) RotationA() uint16 { return uint16(g>>2) & 0x3FF }
func (g GmpEntry) RotationB() uint16 { return uint16(g>>12) & 0x3FF }
func (g GmpEntry) RotationC() uint16 { return uint16(g>>22) & 0x3FF }

// UnknownTotal is the high byte of the word.
func (g GmpEntry) UnknownTotal() uint8 { return uint8(g >> 32) }

// ImcEntry is one variant of an IMC file.
type ImcEntry struct {
	MaterialID          uint8  `json:"material_id"`
	DecalID             uint8  `json:"decal_id"`
	AttributeAndSound   uint16 `json:"attribute_and_sound"`
	VfxID               uint8  `json:"vfx_id"`
	MaterialAnimationID uint8  `json:"material_animation_id"`
}

// AttributeMask returns the low 10 bits of AttributeAndSound.
func (e ImcEntry) AttributeMask() uint16 { return e.AttributeAndSound & 0x3FF }

// SoundID returns the high 6 bits of AttributeAndSound.
func (e ImcEntry) SoundID() uint8 { return uint8(e.AttributeAndSound >> 10) }

// RspEntry is one racial scaling value.
type RspEntry float32
