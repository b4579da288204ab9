package gamepath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/metapatch/pkg/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		path string
		want FileInfo
	}{
		{
			name: "equipment meta",
			path: "chara/equipment/e0123/e0123_top.meta",
			want: FileInfo{PrimaryType: types.ObjectEquipment, PrimaryID: 123, EquipSlot: types.SlotBody},
		},
		{
			name: "equipment model, backslashes and case",
			path: `Chara\Equipment\e6015\model\c0101e6015_MET.mdl`,
			want: FileInfo{PrimaryType: types.ObjectEquipment, PrimaryID: 6015, EquipSlot: types.SlotHead},
		},
		{
			name: "accessory",
			path: "chara/accessory/a0042/a0042_ril.meta",
			want: FileInfo{PrimaryType: types.ObjectAccessory, PrimaryID: 42, EquipSlot: types.SlotLFinger},
		},
		{
			name: "hair",
			path: "chara/human/c0801/obj/hair/h0115/c0801h0115_hir.meta",
			want: FileInfo{
				PrimaryType:   types.ObjectCharacter,
				PrimaryID:     801,
				GenderRace:    types.MiqoteFemale,
				SecondaryType: types.BodyHair,
				SecondaryID:   115,
			},
		},
		{
			name: "face",
			path: "chara/human/c0201/obj/face/f0002/c0201f0002_fac.meta",
			want: FileInfo{
				PrimaryType:   types.ObjectCharacter,
				PrimaryID:     201,
				GenderRace:    types.MidlanderFemale,
				SecondaryType: types.BodyFace,
				SecondaryID:   2,
			},
		},
		{
			name: "weapon",
			path: "chara/weapon/w2001/obj/body/b0010/w2001b0010.meta",
			want: FileInfo{PrimaryType: types.ObjectWeapon, PrimaryID: 2001, SecondaryID: 10, EquipSlot: types.SlotMainHand},
		},
		{
			name: "demihuman",
			path: "chara/demihuman/d1003/obj/equipment/e0001/d1003e0001_dwn.meta",
			want: FileInfo{PrimaryType: types.ObjectDemiHuman, PrimaryID: 1003, SecondaryID: 1, EquipSlot: types.SlotLegs},
		},
		{
			name: "monster",
			path: "chara/monster/m0405/obj/body/b0001/m0405b0001.meta",
			want: FileInfo{PrimaryType: types.ObjectMonster, PrimaryID: 405, SecondaryID: 1},
		},
		{name: "unknown", path: "ui/icon/000000.tex", want: FileInfo{}},
		{name: "empty", path: "", want: FileInfo{}},
		{name: "bad slot suffix", path: "chara/equipment/e0001/e0001_xyz.meta", want: FileInfo{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Default.Resolve(tt.path))
		})
	}
}

func TestFileInfoString(t *testing.T) {
	assert.Equal(t, "Equipment 0123 Body", Resolve("chara/equipment/e0123/e0123_top.meta").String())
	assert.Equal(t, "Unknown", FileInfo{}.String())
}
