package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitJSONWriter(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &out, JSON: true, Level: slog.LevelDebug}))
	L.Debug("parsed", "path", "chara/x.meta", "entries", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "parsed", rec["msg"])
	require.Equal(t, "chara/x.meta", rec["path"])
}

func TestInitDisabledDiscards(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	require.NoError(t, Init(Options{Enabled: false}))
	require.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestOr(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	require.Same(t, custom, Or(custom))
	require.Same(t, L, Or(nil))
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	old := filepath.Join(dir, "metapatch-2024-01-01.log")
	fresh := filepath.Join(dir, "metapatch-2024-02-28.log")
	other := filepath.Join(dir, "unrelated.txt")
	for _, p := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	cleanOldLogs(dir, now)

	require.NoFileExists(t, old)
	require.FileExists(t, fresh)
	require.FileExists(t, other)
}
