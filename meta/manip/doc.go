// Package manip holds normalized metadata overrides.
//
// A Set maps a typed identifier to an override value, one map per
// manipulation type. Adding an identifier that is already present replaces
// its value, so folding files into a Set in load order gives
// last-write-wins semantics across sections and files.
//
//	s := manip.NewSet()
//	s.AddEst(manip.EstIdentifier{Table: types.EstHead, GenderRace: types.MidlanderMale, ID: 1}, 42)
//	stats, err := s.ApplyEst(tables)
package manip
