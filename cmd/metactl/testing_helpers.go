package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/pkg/types"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot block the writer
	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}

// resetFlags restores every command flag to its default
func resetFlags() {
	verbose, quiet, jsonOut, logDir = false, false, false, ""
	parseKeepDefault, parseMerged, parseEstDefaults, parseJobs = false, false, nil, 0
	estApplyType, estApplyOutput = "", ""
}

// writeEstMeta writes a body .meta file carrying skeleton overrides
func writeEstMeta(t *testing.T, dir, name string, recs ...[3]uint16) string {
	t.Helper()
	path := "chara/equipment/e0001/e0001_top.meta"

	var body []byte
	for _, r := range recs {
		for _, v := range r {
			body = binary.LittleEndian.AppendUint16(body, v)
		}
	}

	var b []byte
	b = binary.LittleEndian.AppendUint32(b, 2)
	b = append(b, path...)
	b = append(b, 0)
	start := len(b) + 12
	b = binary.LittleEndian.AppendUint32(b, 1)
	b = binary.LittleEndian.AppendUint32(b, 12)
	b = binary.LittleEndian.AppendUint32(b, uint32(start))
	b = binary.LittleEndian.AppendUint32(b, uint32(types.ManipEst))
	b = binary.LittleEndian.AppendUint32(b, uint32(start+12))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(body)))
	b = append(b, body...)

	out := filepath.Join(dir, name)
	if err := os.WriteFile(out, b, 0o600); err != nil {
		t.Fatalf("write %s: %v", out, err)
	}
	return out
}

// writeEstTable writes a default EST table file
func writeEstTable(t *testing.T, dir string, entries ...est.Entry) string {
	t.Helper()
	data, err := est.Encode(entries)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := filepath.Join(dir, "est_body.bin")
	if err := os.WriteFile(out, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", out, err)
	}
	return out
}
