package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenderRace(t *testing.T) {
	assert.True(t, MidlanderMale.IsValid())
	assert.True(t, UnknownFemaleNpc.IsValid())
	assert.False(t, GenderRace(102).IsValid())
	assert.False(t, GenderRaceUnknown.IsValid())
	assert.Equal(t, "VieraFemale", VieraFemale.String())
	assert.Equal(t, "GenderRace(7)", GenderRace(7).String())
}

func TestEquipSlotCategories(t *testing.T) {
	for _, s := range []EquipSlot{SlotHead, SlotBody, SlotHands, SlotLegs, SlotFeet} {
		assert.True(t, s.IsEquipment(), s.String())
		assert.False(t, s.IsAccessory(), s.String())
	}
	for _, s := range []EquipSlot{SlotEars, SlotNeck, SlotWrists, SlotRFinger, SlotLFinger} {
		assert.True(t, s.IsAccessory(), s.String())
		assert.False(t, s.IsEquipment(), s.String())
	}
	assert.False(t, SlotMainHand.IsEquipment())
	assert.False(t, SlotMainHand.IsAccessory())
}

func TestEstTypeFor(t *testing.T) {
	assert.Equal(t, EstFace, EstTypeFor(BodyFace, SlotUnknown))
	assert.Equal(t, EstHair, EstTypeFor(BodyHair, SlotHead))
	assert.Equal(t, EstHead, EstTypeFor(BodyUnknown, SlotHead))
	assert.Equal(t, EstBody, EstTypeFor(BodyUnknown, SlotBody))
	assert.Equal(t, EstInvalid, EstTypeFor(BodyTail, SlotFeet))
}

func TestEqpSlotLayout(t *testing.T) {
	// The five armor ranges tile the 8-byte word without overlap.
	var all EqpEntry
	for _, s := range []EquipSlot{SlotHead, SlotBody, SlotHands, SlotLegs, SlotFeet} {
		m := EqpMask(s)
		require.NotZero(t, m)
		require.Zero(t, all&m, "overlapping mask for %s", s)
		all |= m
	}
	require.Equal(t, EqpEntry(^uint64(0)), all)

	v, ok := EqpFromSlotBytes(SlotHead, []byte{0x01, 0x02, 0x03})
	require.True(t, ok)
	require.Equal(t, EqpEntry(0x030201)<<40, v)

	_, ok = EqpFromSlotBytes(SlotHead, []byte{0x01})
	require.False(t, ok)
	_, ok = EqpFromSlotBytes(SlotEars, []byte{0x01})
	require.False(t, ok)
}

func TestEqdpBits(t *testing.T) {
	assert.Equal(t, EqdpEntry(0b11<<4), EqdpMask(SlotHands))
	assert.Equal(t, EqdpMask(SlotHands), EqdpMask(SlotWrists))
	assert.Equal(t, EqdpEntry(1<<8), EqdpFromBits(SlotFeet, true, false))
	assert.Equal(t, EqdpEntry(1<<9), EqdpFromBits(SlotLFinger, false, true))
	assert.Equal(t, EqdpEntry(0), EqdpFromBits(SlotMainHand, true, true))
}

func TestGmpEntryFields(t *testing.T) {
	g := GmpFromParts(0x0000_0003|(5<<2)|(7<<12)|(9<<22), 0xAB)
	assert.True(t, g.Enabled())
	assert.True(t, g.Animated())
	assert.Equal(t, uint16(5), g.RotationA())
	assert.Equal(t, uint16(7), g.RotationB())
	assert.Equal(t, uint16(9), g.RotationC())
	assert.Equal(t, uint8(0xAB), g.UnknownTotal())
}

func TestImcEntryFields(t *testing.T) {
	e := ImcEntry{AttributeAndSound: 0x3<<10 | 0x155}
	assert.Equal(t, uint16(0x155), e.AttributeMask())
	assert.Equal(t, uint8(3), e.SoundID())
}

func TestSubRaceAndAttributes(t *testing.T) {
	assert.True(t, Veena.IsValid())
	assert.False(t, SubRaceUnknown.IsValid())
	assert.False(t, SubRace(17).IsValid())
	assert.Equal(t, "Xaela", Xaela.String())
	assert.Equal(t, "BustMaxZ", RspBustMaxZ.String())
	assert.Len(t, MaleRspAttributes, 4)
	assert.Len(t, FemaleRspAttributes, 10)
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SevError, Category: DiagStructure, Offset: 16, Structure: "HEADER", Issue: "truncated"}
	assert.Equal(t, "[ERROR] STRUCTURE HEADER@0x10: truncated", d.String())
	d.Offset = -1
	assert.Contains(t, d.String(), "HEADER@?")
}
