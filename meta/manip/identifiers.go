package manip

import (
	"cmp"
	"fmt"

	"github.com/joshuapare/metapatch/pkg/types"
)

// Identifier is the key of one override.
type Identifier interface {
	Type() types.ManipulationType
	String() string
}

// EstIdentifier selects one skeleton override.
type EstIdentifier struct {
	Table      types.EstType    `json:"table"`
	GenderRace types.GenderRace `json:"gender_race"`
	ID         types.PrimaryID  `json:"id"`
}

// EqpIdentifier selects the slot bits of one equipment set's EQP word.
type EqpIdentifier struct {
	SetID types.PrimaryID `json:"set_id"`
	Slot  types.EquipSlot `json:"slot"`
}

// EqdpIdentifier selects the slot bits of one EQDP entry.
type EqdpIdentifier struct {
	SetID      types.PrimaryID  `json:"set_id"`
	Slot       types.EquipSlot  `json:"slot"`
	GenderRace types.GenderRace `json:"gender_race"`
}

// GmpIdentifier selects the GMP word of one head piece.
type GmpIdentifier struct {
	SetID types.PrimaryID `json:"set_id"`
}

// ImcIdentifier selects one IMC variant.
type ImcIdentifier struct {
	ObjectType  types.ObjectType  `json:"object_type"`
	PrimaryID   types.PrimaryID   `json:"primary_id"`
	SecondaryID types.SecondaryID `json:"secondary_id"`
	Variant     types.Variant     `json:"variant"`
	EquipSlot   types.EquipSlot   `json:"equip_slot"`
	BodySlot    types.BodySlot    `json:"body_slot"`
}

// RspIdentifier selects one racial scaling attribute.
type RspIdentifier struct {
	SubRace   types.SubRace      `json:"sub_race"`
	Attribute types.RspAttribute `json:"attribute"`
}

func (EstIdentifier) Type() types.ManipulationType  { return types.ManipEst }
func (EqpIdentifier) Type() types.ManipulationType  { return types.ManipEqp }
func (EqdpIdentifier) Type() types.ManipulationType { return types.ManipEqdp }
func (GmpIdentifier) Type() types.ManipulationType  { return types.ManipGmp }
func (ImcIdentifier) Type() types.ManipulationType  { return types.ManipImc }
func (RspIdentifier) Type() types.ManipulationType  { return types.ManipRsp }

func (i EstIdentifier) String() string {
	return fmt.Sprintf("Est %s %s %04d", i.Table, i.GenderRace, i.ID)
}

func (i EqpIdentifier) String() string {
	return fmt.Sprintf("Eqp e%04d %s", i.SetID, i.Slot)
}

func (i EqdpIdentifier) String() string {
	return fmt.Sprintf("Eqdp %04d %s %s", i.SetID, i.Slot, i.GenderRace)
}

func (i GmpIdentifier) String() string {
	return fmt.Sprintf("Gmp e%04d", i.SetID)
}

func (i ImcIdentifier) String() string {
	if i.ObjectType == types.ObjectEquipment || i.ObjectType == types.ObjectAccessory {
		return fmt.Sprintf("Imc %s %04d %s v%d", i.ObjectType, i.PrimaryID, i.EquipSlot, i.Variant)
	}
	return fmt.Sprintf("Imc %s %04d %s %04d v%d", i.ObjectType, i.PrimaryID, i.BodySlot, i.SecondaryID, i.Variant)
}

func (i RspIdentifier) String() string {
	return fmt.Sprintf("Rsp %s %s", i.SubRace, i.Attribute)
}

func compareEst(a, b EstIdentifier) int {
	return cmp.Or(
		cmp.Compare(a.Table, b.Table),
		cmp.Compare(a.GenderRace, b.GenderRace),
		cmp.Compare(a.ID, b.ID),
	)
}

func compareEqp(a, b EqpIdentifier) int {
	return cmp.Or(cmp.Compare(a.SetID, b.SetID), cmp.Compare(a.Slot, b.Slot))
}

func compareEqdp(a, b EqdpIdentifier) int {
	return cmp.Or(
		cmp.Compare(a.SetID, b.SetID),
		cmp.Compare(a.Slot, b.Slot),
		cmp.Compare(a.GenderRace, b.GenderRace),
	)
}

func compareGmp(a, b GmpIdentifier) int {
	return cmp.Compare(a.SetID, b.SetID)
}

func compareImc(a, b ImcIdentifier) int {
	return cmp.Or(
		cmp.Compare(a.ObjectType, b.ObjectType),
		cmp.Compare(a.PrimaryID, b.PrimaryID),
		cmp.Compare(a.BodySlot, b.BodySlot),
		cmp.Compare(a.SecondaryID, b.SecondaryID),
		cmp.Compare(a.EquipSlot, b.EquipSlot),
		cmp.Compare(a.Variant, b.Variant),
	)
}

func compareRsp(a, b RspIdentifier) int {
	return cmp.Or(cmp.Compare(a.SubRace, b.SubRace), cmp.Compare(a.Attribute, b.Attribute))
}
