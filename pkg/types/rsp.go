package types

// SubRace is the clan of a playable race.
type SubRace uint8

const (
	SubRaceUnknown SubRace = iota
	Midlander
	Highlander
	Wildwood
	Duskwight
	SeekerOfTheSun
	KeeperOfTheMoon
	Seawolf
	Hellsguard
	Plainsfolk
	Dunesfolk
	Raen
	Xaela
	Hellion
	Lost
	Rava
	Veena
)

var subRaceNames = [...]string{
	"Unknown", "Midlander", "Highlander", "Wildwood", "Duskwight",
	"SeekerOfTheSun", "KeeperOfTheMoon", "Seawolf", "Hellsguard",
	"Plainsfolk", "Dunesfolk", "Raen", "Xaela", "Hellion", "Lost",
	"Rava", "Veena",
}

// IsValid reports whether s is a known clan other than SubRaceUnknown.
func (s SubRace) IsValid() bool {
	return s > SubRaceUnknown && s <= Veena
}

func (s SubRace) String() string {
	if int(s) < len(subRaceNames) {
		return subRaceNames[s]
	}
	return "Unknown"
}

// RspAttribute is one racial scaling parameter of the human.cmp table.
type RspAttribute uint8

const (
	RspMaleMinSize RspAttribute = iota
	RspMaleMaxSize
	RspMaleMinTail
	RspMaleMaxTail
	RspFemaleMinSize
	RspFemaleMaxSize
	RspFemaleMinTail
	RspFemaleMaxTail
	RspBustMinX
	RspBustMinY
	RspBustMinZ
	RspBustMaxX
	RspBustMaxY
	RspBustMaxZ
)

var rspAttributeNames = [...]string{
	"MaleMinSize", "MaleMaxSize", "MaleMinTail", "MaleMaxTail",
	"FemaleMinSize", "FemaleMaxSize", "FemaleMinTail", "FemaleMaxTail",
	"BustMinX", "BustMinY", "BustMinZ", "BustMaxX", "BustMaxY", "BustMaxZ",
}

func (a RspAttribute) String() string {
	if int(a) < len(rspAttributeNames) {
		return rspAttributeNames[a]
	}
	return "Unknown"
}

// MaleRspAttributes and FemaleRspAttributes list the attributes stored in
// an .rgsp file, in file order.
var (
	MaleRspAttributes = [...]RspAttribute{
		RspMaleMinSize, RspMaleMaxSize, RspMaleMinTail, RspMaleMaxTail,
	}
	FemaleRspAttributes = [...]RspAttribute{
		RspFemaleMinSize, RspFemaleMaxSize, RspFemaleMinTail, RspFemaleMaxTail,
		RspBustMinX, RspBustMinY, RspBustMinZ, RspBustMaxX, RspBustMaxY, RspBustMaxZ,
	}
)
