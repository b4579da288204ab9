// Package gamepath classifies the game paths embedded in metadata files.
//
// A .meta file names the game file it edits, e.g.
// chara/equipment/e0123/e0123_top.meta. The Resolver turns that path into
// a FileInfo telling the decoder which tables the file's sections apply
// to. Paths it does not recognize yield an ObjectUnknown info.
package gamepath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/joshuapare/metapatch/pkg/types"
)

// FileInfo is what a path says about the object a file edits.
type FileInfo struct {
	PrimaryType   types.ObjectType  `json:"primary_type"`
	PrimaryID     types.PrimaryID   `json:"primary_id"`
	SecondaryType types.BodySlot    `json:"secondary_type"`
	SecondaryID   types.SecondaryID `json:"secondary_id"`
	EquipSlot     types.EquipSlot   `json:"equip_slot"`
	GenderRace    types.GenderRace  `json:"gender_race,omitempty"` // character files only
}

func (fi FileInfo) String() string {
	switch fi.PrimaryType {
	case types.ObjectEquipment, types.ObjectAccessory:
		return fmt.Sprintf("%s %04d %s", fi.PrimaryType, fi.PrimaryID, fi.EquipSlot)
	case types.ObjectCharacter:
		return fmt.Sprintf("%s %s %s %04d", fi.PrimaryType, fi.GenderRace, fi.SecondaryType, fi.SecondaryID)
	case types.ObjectUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("%s %04d %04d", fi.PrimaryType, fi.PrimaryID, fi.SecondaryID)
	}
}

// Resolver maps an embedded path to a FileInfo.
type Resolver interface {
	Resolve(path string) FileInfo
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(path string) FileInfo

func (f ResolverFunc) Resolve(path string) FileInfo { return f(path) }

var (
	equipmentRe = regexp.MustCompile(`^chara/equipment/e(\d{4})/(?:.*/)?[^/]*_(met|top|glv|dwn|sho)\.[a-z]+$`)
	accessoryRe = regexp.MustCompile(`^chara/accessory/a(\d{4})/(?:.*/)?[^/]*_(ear|nek|wrs|rir|ril)\.[a-z]+$`)
	characterRe = regexp.MustCompile(`^chara/human/c(\d{4})/obj/(hair|face|tail|body|zear)/[hftbz](\d{4})/`)
	weaponRe    = regexp.MustCompile(`^chara/weapon/w(\d{4})/obj/body/b(\d{4})/`)
	demiHumanRe = regexp.MustCompile(`^chara/demihuman/d(\d{4})/obj/equipment/e(\d{4})/(?:.*/)?[^/]*_(met|top|glv|dwn|sho)\.[a-z]+$`)
	monsterRe   = regexp.MustCompile(`^chara/monster/m(\d{4})/obj/body/b(\d{4})/`)
)

var slotSuffixes = map[string]types.EquipSlot{
	"met": types.SlotHead,
	"top": types.SlotBody,
	"glv": types.SlotHands,
	"dwn": types.SlotLegs,
	"sho": types.SlotFeet,
	"ear": types.SlotEars,
	"nek": types.SlotNeck,
	"wrs": types.SlotWrists,
	"rir": types.SlotRFinger,
	"ril": types.SlotLFinger,
}

var bodySlots = map[string]types.BodySlot{
	"hair": types.BodyHair,
	"face": types.BodyFace,
	"tail": types.BodyTail,
	"body": types.BodyBody,
	"zear": types.BodyZear,
}

// Default is the resolver for the game's chara/ layout.
var Default Resolver = ResolverFunc(Resolve)

// Resolve classifies path. Separators and case are normalized first.
func Resolve(path string) FileInfo {
	p := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(path), `\`, "/"))

	if m := equipmentRe.FindStringSubmatch(p); m != nil {
		return FileInfo{PrimaryType: types.ObjectEquipment, PrimaryID: types.PrimaryID(id(m[1])), EquipSlot: slotSuffixes[m[2]]}
	}
	if m := accessoryRe.FindStringSubmatch(p); m != nil {
		return FileInfo{PrimaryType: types.ObjectAccessory, PrimaryID: types.PrimaryID(id(m[1])), EquipSlot: slotSuffixes[m[2]]}
	}
	if m := characterRe.FindStringSubmatch(p); m != nil {
		model := id(m[1])
		return FileInfo{
			PrimaryType:   types.ObjectCharacter,
			PrimaryID:     types.PrimaryID(model),
			GenderRace:    types.GenderRace(model),
			SecondaryType: bodySlots[m[2]],
			SecondaryID:   types.SecondaryID(id(m[3])),
		}
	}
	if m := weaponRe.FindStringSubmatch(p); m != nil {
		return FileInfo{PrimaryType: types.ObjectWeapon, PrimaryID: types.PrimaryID(id(m[1])), SecondaryID: types.SecondaryID(id(m[2])), EquipSlot: types.SlotMainHand}
	}
	if m := demiHumanRe.FindStringSubmatch(p); m != nil {
		return FileInfo{PrimaryType: types.ObjectDemiHuman, PrimaryID: types.PrimaryID(id(m[1])), SecondaryID: types.SecondaryID(id(m[2])), EquipSlot: slotSuffixes[m[3]]}
	}
	if m := monsterRe.FindStringSubmatch(p); m != nil {
		return FileInfo{PrimaryType: types.ObjectMonster, PrimaryID: types.PrimaryID(id(m[1])), SecondaryID: types.SecondaryID(id(m[2]))}
	}
	return FileInfo{}
}

// id parses a four-digit match; the regexps guarantee the digits.
func id(s string) uint16 {
	n, _ := strconv.ParseUint(s, 10, 16)
	return uint16(n)
}
