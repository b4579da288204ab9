// Package ttmeta decodes TexTools metadata files.
//
// A .meta container starts with a prologue naming the game file it edits,
// followed by a header directory pointing at up to five typed sections:
//
//	Version      u32
//	Path         NUL-terminated
//	NumHeaders   u32
//	HeaderSize   u32
//	HeaderStart  u32
//	...
//	HeaderStart + i*HeaderSize: [Type u32][Offset u32][Size i32]
//
// Sections are decoded in the order EQP, GMP, EQDP, EST, IMC; for each
// type the first header carrying its tag is used and later duplicates and
// unknown tags are ignored. Every decoded entry is compared against the
// baseline and dropped when it equals it, unless KeepDefault is set.
//
// Decoding never fails outright. A file with any structural problem comes
// back with StatusInvalid, an empty manipulation set, an empty path and a
// Diagnostic describing the first problem found:
//
//	m := ttmeta.Parse(data, ttmeta.DefaultOptions())
//	if m.Status == ttmeta.StatusInvalid {
//	    log.Println(m.Diagnostic)
//	}
//
// ParseRGSP decodes the companion .rgsp racial scaling files the same way.
package ttmeta
