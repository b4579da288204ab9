// Package est implements the skeleton override table (EST): a packed,
// sorted array of (GenderRace, PrimaryID) → skeleton id entries that can
// be edited in place.
//
// # Layout
//
// The table is a single little-endian byte buffer:
//
//	0x00  Count u32
//	0x04  Count x [PrimaryID u16][GenderRace u16]   strictly ascending by (GenderRace, PrimaryID)
//	....  Count x [SkeletonID u16]                  index-aligned with the descriptors
//
// Bytes after the logical end (4 + Count*6) are spare capacity and are
// always zero.
//
// # Editing
//
// Set follows the table's sentinel rule: skeleton id 0 means "no
// override" and is never stored. Writing 0 to an existing key removes it,
// writing 0 to a missing key does nothing:
//
//	t, err := est.New(defaultSnapshot)
//	if err != nil {
//	    return err // invalid snapshot: configuration error
//	}
//	change, err := t.Set(types.MidlanderMale, 101, 42) // est.Added
//	change, err = t.Set(types.MidlanderMale, 101, 0)   // est.Removed
//
// Inserts that do not fit grow the buffer by a fixed block (512 bytes
// unless WithGrowth says otherwise). Removal never shrinks it; only Rebase
// onto a smaller snapshot does.
//
// # Thread Safety
//
// A Table is single-writer and unsynchronized. Lookup on a raw buffer is
// read-only and safe for concurrent use as long as the buffer stays alive,
// which callers guarantee by holding a handle on it (see meta/handle).
package est
