// Package types defines the value types shared by the metapatch packages:
// gender/race codes, equipment and body slots, the per-type metadata entry
// encodings, manipulation type tags, parser limits, and diagnostics.
//
// Design goals:
//   - Small, comparable value types usable as map keys.
//   - Bit layouts match the game's in-memory encodings exactly.
//   - No dependencies beyond the standard library.
package types
