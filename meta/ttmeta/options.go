package ttmeta

import (
	"log/slog"

	"github.com/joshuapare/metapatch/meta/gamepath"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/pkg/types"
)

// Defaults supplies the unmodified game values decoded entries are
// compared against. Word-sized lookups return the full default word; the
// decoder masks it to the slot a file edits.
type Defaults interface {
	Est(t types.EstType, gr types.GenderRace, id types.PrimaryID) types.EstEntry
	Eqp(set types.PrimaryID) types.EqpEntry
	Eqdp(set types.PrimaryID, slot types.EquipSlot, gr types.GenderRace) types.EqdpEntry
	Gmp(set types.PrimaryID) types.GmpEntry
	// Imc fails when the object has no IMC file.
	Imc(id manip.ImcIdentifier) (types.ImcEntry, error)
	Rsp(sub types.SubRace, attr types.RspAttribute) types.RspEntry
}

// Options configures decoding.
type Options struct {
	// KeepDefault keeps entries equal to the baseline.
	KeepDefault bool

	// Resolver classifies the embedded path. Default: gamepath.Default.
	Resolver gamepath.Resolver

	// Defaults is the baseline. Default: every value reads as zero.
	Defaults Defaults

	// Limits bound header counts and sizes. DefaultLimits rejects files
	// whose counts or sizes exceed them even when the buffer holds the
	// data; use types.RelaxedLimits (the zero value) to accept everything
	// the format allows.
	Limits types.Limits

	// Logger receives decode errors and warnings. Default: logger.L.
	Logger *slog.Logger
}

// DefaultOptions returns options with the default resolver and limits.
func DefaultOptions() Options {
	return Options{
		Resolver: gamepath.Default,
		Limits:   types.DefaultLimits(),
	}
}

// zeroDefaults is the baseline of a game with no data.
type zeroDefaults struct{}

func (zeroDefaults) Est(types.EstType, types.GenderRace, types.PrimaryID) types.EstEntry {
	return types.EstZero
}
func (zeroDefaults) Eqp(types.PrimaryID) types.EqpEntry { return 0 }
func (zeroDefaults) Eqdp(types.PrimaryID, types.EquipSlot, types.GenderRace) types.EqdpEntry {
	return 0
}
func (zeroDefaults) Gmp(types.PrimaryID) types.GmpEntry { return 0 }
func (zeroDefaults) Imc(manip.ImcIdentifier) (types.ImcEntry, error) {
	return types.ImcEntry{}, nil
}
func (zeroDefaults) Rsp(types.SubRace, types.RspAttribute) types.RspEntry { return 0 }
