package ttmeta

import (
	"fmt"
	"math"

	"github.com/joshuapare/metapatch/internal/buf"
	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/pkg/types"
)

// keep reports whether a decoded value belongs in the set.
func (d *decoder) keep(isDefault bool) bool {
	return d.opts.KeepDefault || !isDefault
}

// eqp reads the raw bytes of the file's slot inside the set's EQP word.
// Files for other slots carry no EQP data.
func (d *decoder) eqp(data []byte) error {
	slot := d.info.EquipSlot
	if !slot.IsEquipment() {
		return nil
	}
	value, ok := types.EqpFromSlotBytes(slot, data)
	if !ok {
		_, width, _ := types.EqpSlotRange(slot)
		return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrSlotLength, slot, width, len(data))
	}
	def := d.defaults.Eqp(d.info.PrimaryID) & types.EqpMask(slot)
	if d.keep(value == def) {
		d.set.AddEqp(manip.EqpIdentifier{SetID: d.info.PrimaryID, Slot: slot}, value)
	}
	return nil
}

// gmp reads the 5-byte GMP word. Bytes past the first five are ignored.
func (d *decoder) gmp(data []byte) error {
	if len(data) < format.GmpRecordSize {
		return fmt.Errorf("%w: need %d bytes, have %d", format.ErrTruncated, format.GmpRecordSize, len(data))
	}
	value := types.GmpFromParts(buf.U32LE(data), buf.U8(data, 4))
	if d.keep(value == d.defaults.Gmp(d.info.PrimaryID)) {
		d.set.AddGmp(manip.GmpIdentifier{SetID: d.info.PrimaryID}, value)
	}
	return nil
}

// eqdp reads [GenderRace u32][bits u8] records. Records for unknown
// gender/races, or in files that are not gear, are skipped.
func (d *decoder) eqdp(data []byte) {
	slot := d.info.EquipSlot
	gear := slot.IsEquipment() || slot.IsAccessory()
	for i := range len(data) / format.EqdpRecordSize {
		rec := data[i*format.EqdpRecordSize:]
		raw := buf.U32LE(rec)
		gr := types.GenderRace(raw)
		if raw > math.MaxUint16 || !gr.IsValid() || !gear {
			continue
		}
		bits := rec[4]
		value := types.EqdpFromBits(slot, bits&format.EqdpMaterialBit != 0, bits&format.EqdpModelBit != 0)
		def := d.defaults.Eqdp(d.info.PrimaryID, slot, gr) & types.EqdpMask(slot)
		if d.keep(value == def) {
			d.set.AddEqdp(manip.EqdpIdentifier{SetID: d.info.PrimaryID, Slot: slot, GenderRace: gr}, value)
		}
	}
}

// est reads [GenderRace u16][PrimaryId u16][SkeletonId u16] records into
// the table selected by the file's body or equip slot.
func (d *decoder) est(data []byte) {
	table := types.EstTypeFor(d.info.SecondaryType, d.info.EquipSlot)
	for i := range len(data) / format.EstRecordSize {
		rec := data[i*format.EstRecordSize:]
		gr := types.GenderRace(buf.U16LE(rec))
		id := types.PrimaryID(buf.U16LE(rec[2:]))
		value := types.EstEntry(buf.U16LE(rec[4:]))
		if !gr.IsValid() || table == types.EstInvalid {
			continue
		}
		if d.keep(value == d.defaults.Est(table, gr, id)) {
			d.set.AddEst(manip.EstIdentifier{Table: table, GenderRace: gr, ID: id}, value)
		}
	}
}

// imc reads one entry per variant. When the baseline has no IMC file for
// the object, the whole section is skipped and the rest of the file kept.
func (d *decoder) imc(data []byte, off int) {
	id := manip.ImcIdentifier{
		ObjectType:  d.info.PrimaryType,
		PrimaryID:   d.info.PrimaryID,
		SecondaryID: d.info.SecondaryID,
		EquipSlot:   d.info.EquipSlot,
		BodySlot:    d.info.SecondaryType,
	}

	type variant struct {
		id    manip.ImcIdentifier
		value types.ImcEntry
	}
	var out []variant
	for i := range len(data) / format.ImcRecordSize {
		value := readImc(data[i*format.ImcRecordSize:])
		id.Variant = types.Variant(i)
		def, err := d.defaults.Imc(id)
		if err != nil {
			d.log.Warn("skipping imc section without defaults", "path", d.path, "object", d.info.String(), "error", err)
			d.warnings = append(d.warnings, types.Diagnostic{
				Severity:  types.SevWarning,
				Category:  types.DiagBaseline,
				Offset:    int64(off),
				Structure: "IMC",
				Path:      d.path,
				Issue:     err.Error(),
			})
			return
		}
		if d.keep(value == def) {
			out = append(out, variant{id: id, value: value})
		}
	}
	for _, v := range out {
		d.set.AddImc(v.id, v.value)
	}
}

func readImc(b []byte) types.ImcEntry {
	return types.ImcEntry{
		MaterialID:          b[format.ImcMaterialIDOffset],
		DecalID:             b[format.ImcDecalIDOffset],
		AttributeAndSound:   buf.U16LE(b[format.ImcAttributeAndSoundOffset:]),
		VfxID:               b[format.ImcVfxIDOffset],
		MaterialAnimationID: b[format.ImcMaterialAnimationIDOffset],
	}
}
