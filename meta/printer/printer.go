// Package printer renders decoded metadata and skeleton tables as text or
// JSON.
package printer

import (
	"io"

	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/meta/ttmeta"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// ShowDiagnostics includes diagnostics and warnings of decoded files.
	// Default: true
	ShowDiagnostics bool

	// ShowDefaults prints the default next to every skeleton table entry.
	// Default: false
	ShowDefaults bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		IndentSize:      DefaultIndentSize,
		ShowDiagnostics: true,
	}
}

// Printer writes formatted output to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintMeta(ttmeta.Parse(data, ttmeta.DefaultOptions()))
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// PrintMeta prints one decoded file.
func (p *Printer) PrintMeta(m *ttmeta.Meta) error {
	if p.opts.Format == FormatJSON {
		return p.printMetaJSON(m)
	}
	return p.printMetaText(m)
}

// PrintSet prints every override of s.
func (p *Printer) PrintSet(s *manip.Set) error {
	if p.opts.Format == FormatJSON {
		return p.printSetJSON(s)
	}
	return p.printSetText(s, 0)
}

// PrintEst prints the live entries of a skeleton table.
func (p *Printer) PrintEst(name string, t *est.Table) error {
	if p.opts.Format == FormatJSON {
		return p.printEstJSON(name, t)
	}
	return p.printEstText(name, t)
}
