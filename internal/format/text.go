package format

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodePath turns the raw bytes of an embedded game path into a string.
// TexTools writes UTF-8; older tools wrote the ANSI code page, so anything
// that is not valid UTF-8 is decoded as Windows-1252.
func DecodePath(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
