package types

import "fmt"

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo     Severity = iota // Informational (unusual but valid)
	SevWarning                  // Part of the input was skipped
	SevError                    // The input contributed nothing
	SevCritical                 // Structural corruption, nothing could be read
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// DiagCategory classifies the type of issue found.
type DiagCategory int

const (
	DiagStructure DiagCategory = iota // prologue, header directory, section bounds
	DiagData                          // section contents that do not decode
	DiagBaseline                      // defaults needed for comparison were unavailable
)

func (c DiagCategory) String() string {
	switch c {
	case DiagStructure:
		return "STRUCTURE"
	case DiagData:
		return "DATA"
	case DiagBaseline:
		return "BASELINE"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic describes one problem found while decoding a metadata file.
type Diagnostic struct {
	// Classification
	Severity Severity     `json:"severity"`
	Category DiagCategory `json:"category"`

	// Location
	Offset    int64  `json:"offset"`         // Absolute byte offset in the file, -1 when unknown
	Structure string `json:"structure"`      // "PROLOGUE", "HEADER", "EST", "RGSP", ...
	Path      string `json:"path,omitempty"` // Embedded or on-disk path of the file

	// Description
	Issue    string `json:"issue"`              // Human-readable description
	Expected any    `json:"expected,omitempty"` // Expected value (for validation errors)
	Actual   any    `json:"actual,omitempty"`   // Actual value found
}

func (d Diagnostic) String() string {
	loc := "?"
	if d.Offset >= 0 {
		loc = fmt.Sprintf("0x%X", d.Offset)
	}
	return fmt.Sprintf("[%s] %s %s@%s: %s", d.Severity, d.Category, d.Structure, loc, d.Issue)
}
