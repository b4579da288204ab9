package printer

import (
	"encoding/json"

	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/meta/gamepath"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/meta/ttmeta"
	"github.com/joshuapare/metapatch/pkg/types"
)

// jsonRecord represents one override in JSON format.
type jsonRecord struct {
	Type  string           `json:"type"`
	Key   string           `json:"key"`
	ID    manip.Identifier `json:"id"`
	Value any              `json:"value"`
}

// jsonMeta represents a decoded file in JSON format.
type jsonMeta struct {
	Status        string             `json:"status"`
	Version       uint32             `json:"version"`
	Path          string             `json:"path"`
	Info          gamepath.FileInfo  `json:"info"`
	Manipulations []jsonRecord       `json:"manipulations"`
	Diagnostic    *types.Diagnostic  `json:"diagnostic,omitempty"`
	Warnings      []types.Diagnostic `json:"warnings,omitempty"`
}

// jsonEstEntry represents one skeleton table entry in JSON format.
type jsonEstEntry struct {
	GenderRace string          `json:"gender_race"`
	ID         types.PrimaryID `json:"id"`
	Value      types.EstEntry  `json:"value"`
	Default    *types.EstEntry `json:"default,omitempty"`
}

type jsonEst struct {
	Table     string         `json:"table"`
	Count     int            `json:"count"`
	Size      int            `json:"size"`
	Allocated int            `json:"allocated"`
	Entries   []jsonEstEntry `json:"entries"`
}

func records(s *manip.Set) []jsonRecord {
	out := make([]jsonRecord, 0, s.Len())
	for _, r := range s.Records() {
		out = append(out, jsonRecord{Type: r.Type.String(), Key: r.ID.String(), ID: r.ID, Value: r.Value})
	}
	return out
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) printMetaJSON(m *ttmeta.Meta) error {
	out := jsonMeta{
		Status:        m.Status.String(),
		Version:       m.Version,
		Path:          m.FilePath,
		Info:          m.Info,
		Manipulations: records(m.Manipulations),
	}
	if p.opts.ShowDiagnostics {
		out.Diagnostic = m.Diagnostic
		out.Warnings = m.Warnings
	}
	return p.writeJSON(out)
}

func (p *Printer) printSetJSON(s *manip.Set) error {
	return p.writeJSON(records(s))
}

func (p *Printer) printEstJSON(name string, t *est.Table) error {
	out := jsonEst{
		Table:     name,
		Count:     t.Count(),
		Size:      t.Size(),
		Allocated: t.Len(),
		Entries:   make([]jsonEstEntry, 0, t.Count()),
	}
	for k, v := range t.All() {
		e := jsonEstEntry{GenderRace: k.GenderRace.String(), ID: k.ID, Value: v}
		if p.opts.ShowDefaults {
			def := t.Default(k.GenderRace, k.ID)
			e.Default = &def
		}
		out.Entries = append(out.Entries, e)
	}
	return p.writeJSON(out)
}
