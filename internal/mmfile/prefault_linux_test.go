//go:build linux

package mmfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefaultAccessibleMemory(t *testing.T) {
	require.NoError(t, prefault(nil))
	require.NoError(t, touchPages(make([]byte, 3*4096+17)))
}
