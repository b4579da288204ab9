package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/meta/ttmeta"
	"github.com/joshuapare/metapatch/pkg/types"
)

func (p *Printer) indent(depth int) string {
	return strings.Repeat(" ", depth*p.opts.IndentSize)
}

func (p *Printer) printMetaText(m *ttmeta.Meta) error {
	path := m.FilePath
	if path == "" {
		path = "(none)"
	}
	if _, err := fmt.Fprintf(p.writer, "[%s] %s\n", m.Status, path); err != nil {
		return err
	}
	if m.Valid() {
		fmt.Fprintf(p.writer, "%sVersion: %d, Object: %s, Manipulations: %d\n",
			p.indent(1), m.Version, m.Info, m.Manipulations.Len())
	}
	if p.opts.ShowDiagnostics {
		if m.Diagnostic != nil {
			fmt.Fprintf(p.writer, "%s%s\n", p.indent(1), m.Diagnostic)
		}
		for _, w := range m.Warnings {
			fmt.Fprintf(p.writer, "%s%s\n", p.indent(1), w)
		}
	}
	return p.printSetText(m.Manipulations, 1)
}

func (p *Printer) printSetText(s *manip.Set, depth int) error {
	indent := p.indent(depth)
	for _, r := range s.Records() {
		if _, err := fmt.Fprintf(p.writer, "%s%s = %s\n", indent, r.ID, formatValue(r.Value)); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders an override value the way the game tables show it.
func formatValue(v any) string {
	switch v := v.(type) {
	case types.EstEntry:
		return fmt.Sprintf("%d", v)
	case types.EqpEntry:
		return fmt.Sprintf("0x%016X", uint64(v))
	case types.EqdpEntry:
		return fmt.Sprintf("0x%04X", uint16(v))
	case types.GmpEntry:
		return fmt.Sprintf("enabled=%t animated=%t rotation=%d/%d/%d unknown=%d",
			v.Enabled(), v.Animated(), v.RotationA(), v.RotationB(), v.RotationC(), v.UnknownTotal())
	case types.ImcEntry:
		return fmt.Sprintf("material=%d decal=%d attributes=0x%03X sound=%d vfx=%d animation=%d",
			v.MaterialID, v.DecalID, v.AttributeMask(), v.SoundID(), v.VfxID, v.MaterialAnimationID)
	case types.RspEntry:
		return fmt.Sprintf("%g", float32(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (p *Printer) printEstText(name string, t *est.Table) error {
	if _, err := fmt.Fprintf(p.writer, "[%s]\n%sEntries: %d, Size: %d, Allocated: %d\n",
		name, p.indent(1), t.Count(), t.Size(), t.Len()); err != nil {
		return err
	}
	indent := p.indent(1)
	for k, v := range t.All() {
		var err error
		if p.opts.ShowDefaults {
			_, err = fmt.Fprintf(p.writer, "%s%s = %d (default %d)\n", indent, k, v, t.Default(k.GenderRace, k.ID))
		} else {
			_, err = fmt.Fprintf(p.writer, "%s%s = %d\n", indent, k, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
