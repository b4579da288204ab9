// Package mmfile provides platform-specific helpers for memory-mapping
// baseline table files read-only.
package mmfile
