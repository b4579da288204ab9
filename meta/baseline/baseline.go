// Package baseline supplies the unmodified game values that decoded
// overrides are compared against.
//
// Skeleton tables are host resources: a Baseline holds one owning handle
// per EST type and reads through a scoped reference (acquire, look up,
// release) on every query. The smaller tables are plain maps filled by the
// host; missing entries read as zero.
package baseline

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/joshuapare/metapatch/internal/format"
	"github.com/joshuapare/metapatch/internal/logger"
	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/meta/handle"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/meta/resource"
	"github.com/joshuapare/metapatch/pkg/types"
)

var (
	// ErrNoImcFile is returned when no IMC file is known for an object.
	ErrNoImcFile = errors.New("baseline: no imc file for object")

	// ErrInvalidEstType is returned for types.EstInvalid.
	ErrInvalidEstType = errors.New("baseline: invalid est type")
)

type eqdpKey struct {
	set        types.PrimaryID
	accessory  bool
	genderRace types.GenderRace
}

// imcFile identifies one IMC file. Equipment and accessory files hold
// every slot of a set, so the slot is not part of the key.
type imcFile struct {
	object    types.ObjectType
	primary   types.PrimaryID
	secondary types.SecondaryID
	body      types.BodySlot
}

type imcVariant struct {
	slot    types.EquipSlot
	variant types.Variant
}

func imcFileOf(id manip.ImcIdentifier) imcFile {
	f := imcFile{object: id.ObjectType, primary: id.PrimaryID, secondary: id.SecondaryID, body: id.BodySlot}
	if id.ObjectType == types.ObjectEquipment || id.ObjectType == types.ObjectAccessory {
		f.secondary = 0
		f.body = types.BodyUnknown
	}
	return f
}

// Baseline is safe for concurrent reads. Setters may run concurrently
// with reads but are intended for setup.
type Baseline struct {
	reg *resource.Table
	log *slog.Logger

	mu   sync.RWMutex
	est  map[types.EstType]*handle.Handle
	eqp  map[types.PrimaryID]types.EqpEntry
	eqdp map[eqdpKey]types.EqdpEntry
	gmp  map[types.PrimaryID]types.GmpEntry
	imc  map[imcFile]map[imcVariant]types.ImcEntry
	rsp  map[manip.RspIdentifier]types.RspEntry
}

// New returns an empty baseline whose skeleton tables live in reg. A nil
// reg gets a private resource table.
func New(reg *resource.Table, log *slog.Logger) *Baseline {
	log = logger.Or(log)
	if reg == nil {
		reg = resource.New(log)
	}
	return &Baseline{
		reg:  reg,
		log:  log,
		est:  make(map[types.EstType]*handle.Handle),
		eqp:  make(map[types.PrimaryID]types.EqpEntry),
		eqdp: make(map[eqdpKey]types.EqdpEntry),
		gmp:  make(map[types.PrimaryID]types.GmpEntry),
		imc:  make(map[imcFile]map[imcVariant]types.ImcEntry),
		rsp:  make(map[manip.RspIdentifier]types.RspEntry),
	}
}

// Resources returns the table the skeleton defaults live in.
func (b *Baseline) Resources() *resource.Table { return b.reg }

// RegisterEst makes the resource at addr the default table for t. The
// baseline takes its own reference; the caller keeps theirs. The resource
// must hold a valid table.
func (b *Baseline) RegisterEst(t types.EstType, addr handle.Address) error {
	if t == types.EstInvalid {
		return ErrInvalidEstType
	}
	err := handle.Use(b.reg, addr, func(a handle.Address) error {
		data, err := b.reg.Bytes(a)
		if err != nil {
			return err
		}
		return est.Validate(data)
	})
	if err != nil {
		return fmt.Errorf("baseline: est %s: %w", t, err)
	}

	h, err := handle.New(b.reg, addr, true, true)
	if err != nil {
		return err
	}

	b.mu.Lock()
	old := b.est[t]
	b.est[t] = h
	b.mu.Unlock()

	if old != nil {
		old.Release()
	}
	return nil
}

// LoadEst registers a heap copy of data as the default table for t.
func (b *Baseline) LoadEst(t types.EstType, data []byte) error {
	addr := b.reg.Register("est_"+t.String(), slices.Clone(data), nil)
	defer b.reg.DecRef(addr)
	return b.RegisterEst(t, addr)
}

// MapEst memory-maps the table file at path as the default table for t.
func (b *Baseline) MapEst(t types.EstType, path string) error {
	addr, err := b.reg.MapFile("est_"+t.String(), path)
	if err != nil {
		return err
	}
	defer b.reg.DecRef(addr)
	return b.RegisterEst(t, addr)
}

// estAddr must be called with b.mu held so the handle cannot be released
// by a concurrent RegisterEst while the caller reads through it.
func (b *Baseline) estAddr(t types.EstType) handle.Address {
	if h := b.est[t]; h != nil {
		return h.Address()
	}
	return handle.Null
}

// Est returns the default skeleton id for (gr, id) in table t, or zero.
func (b *Baseline) Est(t types.EstType, gr types.GenderRace, id types.PrimaryID) types.EstEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	addr := b.estAddr(t)
	if addr == handle.Null {
		return types.EstZero
	}
	var v types.EstEntry
	err := handle.Use(b.reg, addr, func(a handle.Address) error {
		data, err := b.reg.Bytes(a)
		if err != nil {
			return err
		}
		v, err = est.Lookup(data, gr, id)
		return err
	})
	if err != nil {
		b.log.Warn("est default lookup failed", "table", t.String(), "key", est.Key{GenderRace: gr, ID: id}.String(), "error", err)
		return types.EstZero
	}
	return v
}

// EstSnapshot copies the default table for t out of its resource. A type
// without a registered table yields an empty table.
func (b *Baseline) EstSnapshot(t types.EstType) ([]byte, error) {
	if t == types.EstInvalid {
		return nil, ErrInvalidEstType
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	addr := b.estAddr(t)
	if addr == handle.Null {
		return make([]byte, format.EstSize(0)), nil
	}
	var out []byte
	err := handle.Use(b.reg, addr, func(a handle.Address) error {
		data, err := b.reg.Bytes(a)
		if err != nil {
			return err
		}
		out = slices.Clone(data)
		return nil
	})
	return out, err
}

// EstTables builds one editable table per EST type from the defaults.
func (b *Baseline) EstTables(opts ...est.Option) (map[types.EstType]*est.Table, error) {
	tables := make(map[types.EstType]*est.Table, len(types.EstTypes))
	for _, t := range types.EstTypes {
		snap, err := b.EstSnapshot(t)
		if err != nil {
			return nil, err
		}
		tbl, err := est.New(snap, opts...)
		if err != nil {
			return nil, fmt.Errorf("baseline: est %s: %w", t, err)
		}
		tables[t] = tbl
	}
	return tables, nil
}

func (b *Baseline) SetEqp(set types.PrimaryID, v types.EqpEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.eqp[set] = v
}

// Eqp returns the full default EQP word of set.
func (b *Baseline) Eqp(set types.PrimaryID) types.EqpEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.eqp[set]
}

// SetEqdp stores the full EQDP entry of set for the equipment or accessory
// file of gr.
func (b *Baseline) SetEqdp(set types.PrimaryID, accessory bool, gr types.GenderRace, v types.EqdpEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.eqdp[eqdpKey{set: set, accessory: accessory, genderRace: gr}] = v
}

// Eqdp returns the full default EQDP entry covering slot.
func (b *Baseline) Eqdp(set types.PrimaryID, slot types.EquipSlot, gr types.GenderRace) types.EqdpEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.eqdp[eqdpKey{set: set, accessory: slot.IsAccessory(), genderRace: gr}]
}

func (b *Baseline) SetGmp(set types.PrimaryID, v types.GmpEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gmp[set] = v
}

func (b *Baseline) Gmp(set types.PrimaryID) types.GmpEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.gmp[set]
}

// SetImc stores the default entry of one variant and makes its file known.
func (b *Baseline) SetImc(id manip.ImcIdentifier, v types.ImcEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f := imcFileOf(id)
	variants := b.imc[f]
	if variants == nil {
		variants = make(map[imcVariant]types.ImcEntry)
		b.imc[f] = variants
	}
	variants[imcVariant{slot: id.EquipSlot, variant: id.Variant}] = v
}

// Imc returns the default entry for id. ErrNoImcFile means the object has
// no IMC file; unknown variants of a known file read as zero.
func (b *Baseline) Imc(id manip.ImcIdentifier) (types.ImcEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	variants, ok := b.imc[imcFileOf(id)]
	if !ok {
		return types.ImcEntry{}, fmt.Errorf("%w: %s", ErrNoImcFile, id)
	}
	return variants[imcVariant{slot: id.EquipSlot, variant: id.Variant}], nil
}

func (b *Baseline) SetRsp(sub types.SubRace, attr types.RspAttribute, v types.RspEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rsp[manip.RspIdentifier{SubRace: sub, Attribute: attr}] = v
}

func (b *Baseline) Rsp(sub types.SubRace, attr types.RspAttribute) types.RspEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rsp[manip.RspIdentifier{SubRace: sub, Attribute: attr}]
}

// Close releases the skeleton table handles.
func (b *Baseline) Close() error {
	b.mu.Lock()
	handles := b.est
	b.est = make(map[types.EstType]*handle.Handle)
	b.mu.Unlock()

	for _, h := range handles {
		h.Release()
	}
	return nil
}
