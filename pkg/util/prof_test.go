// pkg/util/prof_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfilerInactive(t *testing.T) {
	p, err := CreateProfiler("", "")
	if err != nil {
		t.Fatalf("unexpected error with no profiles requested: %v", err)
	}
	// Nothing active, so Cleanup must be a no-op; twice to check it's
	// idempotent.
	p.Cleanup()
	p.Cleanup()
}

func TestProfilerWritesMemProfile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mem.prof")
	p, err := CreateProfiler("", fn)
	if err != nil {
		t.Fatalf("unable to create profiler: %v", err)
	}
	p.Cleanup()

	fi, err := os.Stat(fn)
	if err != nil {
		t.Fatalf("memory profile not written: %v", err)
	}
	if fi.Size() == 0 {
		t.Errorf("memory profile is empty")
	}

	// The files are closed and forgotten, so a second Cleanup must not
	// write again.
	p.Cleanup()
}

func TestProfilerBadPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "cpu.prof")
	if _, err := CreateProfiler(bad, ""); err == nil {
		t.Errorf("expected an error for an uncreatable CPU profile file")
	}
	if _, err := CreateProfiler("", bad); err == nil {
		t.Errorf("expected an error for an uncreatable memory profile file")
	}
}
