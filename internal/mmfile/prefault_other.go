//go:build unix && !linux

package mmfile

func prefault([]byte) error { return nil }
