package types

import "strconv"

// GenderRace is the game's combined gender/race/NPC code, e.g. 101 for a
// male Midlander or 1801 for a female Viera. Codes are decimal: the
// hundreds place selects race and gender, the last digit NPC variants.
type GenderRace uint16

const (
	GenderRaceUnknown   GenderRace = 0
	MidlanderMale       GenderRace = 101
	MidlanderMaleNpc    GenderRace = 104
	MidlanderFemale     GenderRace = 201
	MidlanderFemaleNpc  GenderRace = 204
	HighlanderMale      GenderRace = 301
	HighlanderMaleNpc   GenderRace = 304
	HighlanderFemale    GenderRace = 401
	HighlanderFemaleNpc GenderRace = 404
	ElezenMale          GenderRace = 501
	ElezenMaleNpc       GenderRace = 504
	ElezenFemale        GenderRace = 601
	ElezenFemaleNpc     GenderRace = 604
	MiqoteMale          GenderRace = 701
	MiqoteMaleNpc       GenderRace = 704
	MiqoteFemale        GenderRace = 801
	MiqoteFemaleNpc     GenderRace = 804
	RoegadynMale        GenderRace = 901
	RoegadynMaleNpc     GenderRace = 904
	RoegadynFemale      GenderRace = 1001
	RoegadynFemaleNpc   GenderRace = 1004
	LalafellMale        GenderRace = 1101
	LalafellMaleNpc     GenderRace = 1104
	LalafellFemale      GenderRace = 1201
	LalafellFemaleNpc   GenderRace = 1204
	AuRaMale            GenderRace = 1301
	AuRaMaleNpc         GenderRace = 1304
	AuRaFemale          GenderRace = 1401
	AuRaFemaleNpc       GenderRace = 1404
	HrothgarMale        GenderRace = 1501
	HrothgarMaleNpc     GenderRace = 1504
	HrothgarFemale      GenderRace = 1601
	HrothgarFemaleNpc   GenderRace = 1604
	VieraMale           GenderRace = 1701
	VieraMaleNpc        GenderRace = 1704
	VieraFemale         GenderRace = 1801
	VieraFemaleNpc      GenderRace = 1804
	UnknownMaleNpc      GenderRace = 9104
	UnknownFemaleNpc    GenderRace = 9204
)

var genderRaceNames = map[GenderRace]string{
	MidlanderMale:       "MidlanderMale",
	MidlanderMaleNpc:    "MidlanderMaleNpc",
	MidlanderFemale:     "MidlanderFemale",
	MidlanderFemaleNpc:  "MidlanderFemaleNpc",
	HighlanderMale:      "HighlanderMale",
	HighlanderMaleNpc:   "HighlanderMaleNpc",
	HighlanderFemale:    "HighlanderFemale",
	HighlanderFemaleNpc: "HighlanderFemaleNpc",
	ElezenMale:          "ElezenMale",
	ElezenMaleNpc:       "ElezenMaleNpc",
	ElezenFemale:        "ElezenFemale",
	ElezenFemaleNpc:     "ElezenFemaleNpc",
	MiqoteMale:          "MiqoteMale",
	MiqoteMaleNpc:       "MiqoteMaleNpc",
	MiqoteFemale:        "MiqoteFemale",
	MiqoteFemaleNpc:     "MiqoteFemaleNpc",
	RoegadynMale:        "RoegadynMale",
	RoegadynMaleNpc:     "RoegadynMaleNpc",
	RoegadynFemale:      "RoegadynFemale",
	RoegadynFemaleNpc:   "RoegadynFemaleNpc",
	LalafellMale:        "LalafellMale",
	LalafellMaleNpc:     "LalafellMaleNpc",
	LalafellFemale:      "LalafellFemale",
	LalafellFemaleNpc:   "LalafellFemaleNpc",
	AuRaMale:            "AuRaMale",
	AuRaMaleNpc:         "AuRaMaleNpc",
	AuRaFemale:          "AuRaFemale",
	AuRaFemaleNpc:       "AuRaFemaleNpc",
	HrothgarMale:        "HrothgarMale",
	HrothgarMaleNpc:     "HrothgarMaleNpc",
	HrothgarFemale:      "HrothgarFemale",
	HrothgarFemaleNpc:   "HrothgarFemaleNpc",
	VieraMale:           "VieraMale",
	VieraMaleNpc:        "VieraMaleNpc",
	VieraFemale:         "VieraFemale",
	VieraFemaleNpc:      "VieraFemaleNpc",
	UnknownMaleNpc:      "UnknownMaleNpc",
	UnknownFemaleNpc:    "UnknownFemaleNpc",
}

// IsValid reports whether gr is one of the known codes.
func (gr GenderRace) IsValid() bool {
	_, ok := genderRaceNames[gr]
	return ok
}

func (gr GenderRace) String() string {
	if name, ok := genderRaceNames[gr]; ok {
		return name
	}
	return "GenderRace(" + strconv.Itoa(int(gr)) + ")"
}

// PrimaryID is the set id of an equipment piece, accessory, weapon, monster
// or, for character files, the model id.
type PrimaryID uint16

// SecondaryID is the id below the primary one (body slot id, weapon body, ...).
type SecondaryID uint16

// Variant indexes the IMC entries of a file.
type Variant uint16
