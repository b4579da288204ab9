package types

// EquipSlot identifies the gear slot a metadata file applies to.
type EquipSlot uint8

const (
	SlotUnknown  EquipSlot = 0
	SlotMainHand EquipSlot = 1
	SlotOffHand  EquipSlot = 2
	SlotHead     EquipSlot = 3
	SlotBody     EquipSlot = 4
	SlotHands    EquipSlot = 5
	SlotLegs     EquipSlot = 7
	SlotFeet     EquipSlot = 8
	SlotEars     EquipSlot = 9
	SlotNeck     EquipSlot = 10
	SlotWrists   EquipSlot = 11
	SlotRFinger  EquipSlot = 12
	SlotLFinger  EquipSlot = 14
)

// IsEquipment reports whether s is one of the five armor slots.
func (s EquipSlot) IsEquipment() bool {
	switch s {
	case SlotHead, SlotBody, SlotHands, SlotLegs, SlotFeet:
		return true
	}
	return false
}

// IsAccessory reports whether s is one of the five accessory slots.
func (s EquipSlot) IsAccessory() bool {
	switch s {
	case SlotEars, SlotNeck, SlotWrists, SlotRFinger, SlotLFinger:
		return true
	}
	return false
}

func (s EquipSlot) String() string {
	switch s {
	case SlotMainHand:
		return "MainHand"
	case SlotOffHand:
		return "OffHand"
	case SlotHead:
		return "Head"
	case SlotBody:
		return "Body"
	case SlotHands:
		return "Hands"
	case SlotLegs:
		return "Legs"
	case SlotFeet:
		return "Feet"
	case SlotEars:
		return "Ears"
	case SlotNeck:
		return "Neck"
	case SlotWrists:
		return "Wrists"
	case SlotRFinger:
		return "RFinger"
	case SlotLFinger:
		return "LFinger"
	default:
		return "Unknown"
	}
}

// BodySlot identifies the customization part of a character file.
type BodySlot uint8

const (
	BodyUnknown BodySlot = iota
	BodyHair
	BodyFace
	BodyTail
	BodyBody
	BodyZear
)

func (b BodySlot) String() string {
	switch b {
	case BodyHair:
		return "Hair"
	case BodyFace:
		return "Face"
	case BodyTail:
		return "Tail"
	case BodyBody:
		return "Body"
	case BodyZear:
		return "Zear"
	default:
		return "Unknown"
	}
}

// ObjectType is the top-level category of a game path.
type ObjectType uint8

const (
	ObjectUnknown ObjectType = iota
	ObjectEquipment
	ObjectAccessory
	ObjectCharacter
	ObjectWeapon
	ObjectDemiHuman
	ObjectMonster
)

func (o ObjectType) String() string {
	switch o {
	case ObjectEquipment:
		return "Equipment"
	case ObjectAccessory:
		return "Accessory"
	case ObjectCharacter:
		return "Character"
	case ObjectWeapon:
		return "Weapon"
	case ObjectDemiHuman:
		return "DemiHuman"
	case ObjectMonster:
		return "Monster"
	default:
		return "Unknown"
	}
}

// EstType selects one of the four skeleton override tables.
type EstType uint8

const (
	EstInvalid EstType = iota
	EstFace
	EstHair
	EstHead
	EstBody
)

// EstTypes lists the valid table types in a stable order.
var EstTypes = [...]EstType{EstFace, EstHair, EstHead, EstBody}

// EstTypeFor picks the skeleton table a file edits: face and hair files by
// their body slot, head and body gear by their equip slot.
func EstTypeFor(body BodySlot, slot EquipSlot) EstType {
	switch {
	case body == BodyFace:
		return EstFace
	case body == BodyHair:
		return EstHair
	case slot == SlotHead:
		return EstHead
	case slot == SlotBody:
		return EstBody
	default:
		return EstInvalid
	}
}

func (e EstType) String() string {
	switch e {
	case EstFace:
		return "Face"
	case EstHair:
		return "Hair"
	case EstHead:
		return "Head"
	case EstBody:
		return "Body"
	default:
		return "Invalid"
	}
}
