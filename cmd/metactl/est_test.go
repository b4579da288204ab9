package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/pkg/types"
)

func TestEstDumpCommand(t *testing.T) {
	resetFlags()
	table := writeEstTable(t, t.TempDir(),
		est.Entry{Key: est.Key{GenderRace: types.MidlanderMale, ID: 1}, Value: 5},
		est.Entry{Key: est.Key{GenderRace: types.VieraFemale, ID: 3}, Value: 7},
	)

	out, err := captureOutput(t, func() error { return runEstDump([]string{table}) })
	require.NoError(t, err)
	require.Contains(t, out, "Entries: 2")
	require.Contains(t, out, "VieraFemale/0003 = 7")

	jsonOut = true
	out, err = captureOutput(t, func() error { return runEstDump([]string{table}) })
	require.NoError(t, err)
	assertJSON(t, out)
}

func TestEstDumpRejectsCorruptTable(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte{9, 0, 0, 0}, 0o600))
	_, err := captureOutput(t, func() error { return runEstDump([]string{path}) })
	require.ErrorIs(t, err, est.ErrInvalidSnapshot)
}

func TestEstApplyCommand(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	table := writeEstTable(t, dir,
		est.Entry{Key: est.Key{GenderRace: types.MidlanderMale, ID: 1}, Value: 5},
		est.Entry{Key: est.Key{GenderRace: types.MidlanderMale, ID: 2}, Value: 6},
	)
	mods := filepath.Join(dir, "mod")
	require.NoError(t, os.Mkdir(mods, 0o755))
	writeEstMeta(t, mods, "a.meta",
		[3]uint16{uint16(types.MidlanderMale), 2, 0},   // remove
		[3]uint16{uint16(types.MidlanderFemale), 1, 9}, // add
	)

	estApplyType = "body"
	estApplyOutput = filepath.Join(dir, "out.bin")
	out, err := captureOutput(t, func() error {
		return runEstApply(context.Background(), []string{table, mods})
	})
	require.NoError(t, err)
	require.Contains(t, out, "added: 1, changed: 0, removed: 1")

	data, err := os.ReadFile(estApplyOutput)
	require.NoError(t, err)
	entries, err := est.Entries(data)
	require.NoError(t, err)
	require.Equal(t, []est.Entry{
		{Key: est.Key{GenderRace: types.MidlanderMale, ID: 1}, Value: 5},
		{Key: est.Key{GenderRace: types.MidlanderFemale, ID: 1}, Value: 9},
	}, entries)
}
