package manip

import (
	"fmt"
	"maps"
	"slices"

	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/pkg/types"
)

// Set is a collection of overrides keyed by identifier. The zero value is
// not usable; call NewSet. A Set is not safe for concurrent mutation.
type Set struct {
	est  map[EstIdentifier]types.EstEntry
	eqp  map[EqpIdentifier]types.EqpEntry
	eqdp map[EqdpIdentifier]types.EqdpEntry
	gmp  map[GmpIdentifier]types.GmpEntry
	imc  map[ImcIdentifier]types.ImcEntry
	rsp  map[RspIdentifier]types.RspEntry
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{
		est:  make(map[EstIdentifier]types.EstEntry),
		eqp:  make(map[EqpIdentifier]types.EqpEntry),
		eqdp: make(map[EqdpIdentifier]types.EqdpEntry),
		gmp:  make(map[GmpIdentifier]types.GmpEntry),
		imc:  make(map[ImcIdentifier]types.ImcEntry),
		rsp:  make(map[RspIdentifier]types.RspEntry),
	}
}

func (s *Set) AddEst(id EstIdentifier, v types.EstEntry)    { s.est[id] = v }
func (s *Set) AddEqp(id EqpIdentifier, v types.EqpEntry)    { s.eqp[id] = v }
func (s *Set) AddEqdp(id EqdpIdentifier, v types.EqdpEntry) { s.eqdp[id] = v }
func (s *Set) AddGmp(id GmpIdentifier, v types.GmpEntry)    { s.gmp[id] = v }
func (s *Set) AddImc(id ImcIdentifier, v types.ImcEntry)    { s.imc[id] = v }
func (s *Set) AddRsp(id RspIdentifier, v types.RspEntry)    { s.rsp[id] = v }

// Est returns the skeleton override stored for id.
func (s *Set) Est(id EstIdentifier) (types.EstEntry, bool) {
	v, ok := s.est[id]
	return v, ok
}

// Eqp returns the EQP override stored for id.
func (s *Set) Eqp(id EqpIdentifier) (types.EqpEntry, bool) {
	v, ok := s.eqp[id]
	return v, ok
}

// Eqdp returns the EQDP override stored for id.
func (s *Set) Eqdp(id EqdpIdentifier) (types.EqdpEntry, bool) {
	v, ok := s.eqdp[id]
	return v, ok
}

// Gmp returns the GMP override stored for id.
func (s *Set) Gmp(id GmpIdentifier) (types.GmpEntry, bool) {
	v, ok := s.gmp[id]
	return v, ok
}

// Imc returns the IMC override stored for id.
func (s *Set) Imc(id ImcIdentifier) (types.ImcEntry, bool) {
	v, ok := s.imc[id]
	return v, ok
}

// Rsp returns the racial scaling override stored for id.
func (s *Set) Rsp(id RspIdentifier) (types.RspEntry, bool) {
	v, ok := s.rsp[id]
	return v, ok
}

// Len returns the total number of overrides.
func (s *Set) Len() int {
	return len(s.est) + len(s.eqp) + len(s.eqdp) + len(s.gmp) + len(s.imc) + len(s.rsp)
}

// Count returns the number of overrides of one type.
func (s *Set) Count(t types.ManipulationType) int {
	switch t {
	case types.ManipEst:
		return len(s.est)
	case types.ManipEqp:
		return len(s.eqp)
	case types.ManipEqdp:
		return len(s.eqdp)
	case types.ManipGmp:
		return len(s.gmp)
	case types.ManipImc:
		return len(s.imc)
	case types.ManipRsp:
		return len(s.rsp)
	default:
		return 0
	}
}

// Merge copies every override of other into s. Values from other win.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	maps.Copy(s.est, other.est)
	maps.Copy(s.eqp, other.eqp)
	maps.Copy(s.eqdp, other.eqdp)
	maps.Copy(s.gmp, other.gmp)
	maps.Copy(s.imc, other.imc)
	maps.Copy(s.rsp, other.rsp)
}

// Clear removes every override.
func (s *Set) Clear() {
	clear(s.est)
	clear(s.eqp)
	clear(s.eqdp)
	clear(s.gmp)
	clear(s.imc)
	clear(s.rsp)
}

// Record is one override in printable form.
type Record struct {
	Type  types.ManipulationType `json:"-"`
	ID    Identifier             `json:"id"`
	Value any                    `json:"value"`
}

// Records returns every override, grouped by type in container decode
// order (then Rsp) and sorted by identifier within a type.
func (s *Set) Records() []Record {
	out := make([]Record, 0, s.Len())
	out = appendSorted(out, s.eqp, compareEqp)
	out = appendSorted(out, s.gmp, compareGmp)
	out = appendSorted(out, s.eqdp, compareEqdp)
	out = appendSorted(out, s.est, compareEst)
	out = appendSorted(out, s.imc, compareImc)
	out = appendSorted(out, s.rsp, compareRsp)
	return out
}

func appendSorted[K interface {
	comparable
	Identifier
}, V any](out []Record, m map[K]V, compare func(a, b K) int) []Record {
	for _, k := range slices.SortedFunc(maps.Keys(m), compare) {
		out = append(out, Record{Type: k.Type(), ID: k, Value: m[k]})
	}
	return out
}

// ApplyStats counts what ApplyEst did.
type ApplyStats struct {
	Added     int
	Changed   int
	Removed   int
	Unchanged int
	Skipped   int // no table for the override's type
}

// ApplyEst writes every skeleton override into the table for its type, in
// identifier order. Overrides whose table is missing are counted as
// skipped. The first table error stops the walk.
func (s *Set) ApplyEst(tables map[types.EstType]*est.Table) (ApplyStats, error) {
	var stats ApplyStats
	for _, id := range slices.SortedFunc(maps.Keys(s.est), compareEst) {
		t := tables[id.Table]
		if t == nil {
			stats.Skipped++
			continue
		}
		change, err := t.Set(id.GenderRace, id.ID, s.est[id])
		if err != nil {
			return stats, fmt.Errorf("manip: apply %s: %w", id, err)
		}
		switch change {
		case est.Added:
			stats.Added++
		case est.Changed:
			stats.Changed++
		case est.Removed:
			stats.Removed++
		default:
			stats.Unchanged++
		}
	}
	return stats, nil
}
