// pkg/renderer/pipeline_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"errors"
	"slices"
	"testing"
)

// stageRecorder records which stages run and can be set up to fail at any
// one of them.
type stageRecorder struct {
	calls    []string
	failAt   string
	failWith error
	hwnd     uintptr
}

func (r *stageRecorder) stage(name string) error {
	r.calls = append(r.calls, name)
	if r.failAt == name {
		return r.failWith
	}
	return nil
}

func (r *stageRecorder) InitDevice() error { return r.stage("device") }
func (r *stageRecorder) InitSurface(hwnd uintptr) error {
	r.hwnd = hwnd
	return r.stage("surface")
}
func (r *stageRecorder) InitTargets() error  { return r.stage("targets") }
func (r *stageRecorder) InitViewport() error { return r.stage("viewport") }

func TestInitStagesOrder(t *testing.T) {
	rec := &stageRecorder{}
	if err := initStages(rec, 42); err != nil {
		t.Errorf("unexpected init error: %v", err)
	}
	if !slices.Equal(rec.calls, []string{"device", "surface", "targets", "viewport"}) {
		t.Errorf("stages ran in wrong order: %v", rec.calls)
	}
	if rec.hwnd != 42 {
		t.Errorf("window handle not passed through: got %d", rec.hwnd)
	}
}

func TestInitStagesAbortOnFailure(t *testing.T) {
	for _, tc := range []struct {
		failAt   string
		err      error
		expected []string
	}{
		{"device", &DeviceCreationError{Code: 0x887a0005}, []string{"device"}},
		{"surface", &SurfaceCreationError{Link: "swap chain"}, []string{"device", "surface"}},
		{"targets", &TargetCreationError{Step: "back buffer"}, []string{"device", "surface", "targets"}},
		{"viewport", errors.New("viewport"), []string{"device", "surface", "targets", "viewport"}},
	} {
		rec := &stageRecorder{failAt: tc.failAt, failWith: tc.err}
		err := initStages(rec, 1)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.failAt)
		} else if err != tc.err {
			t.Errorf("%s: error not returned unchanged: %v", tc.failAt, err)
		}
		if !slices.Equal(rec.calls, tc.expected) {
			t.Errorf("%s: stages after the failing one still ran: %v", tc.failAt, rec.calls)
		}
	}
}

func TestInitStagesErrorTypes(t *testing.T) {
	rec := &stageRecorder{failAt: "surface", failWith: &SurfaceCreationError{Link: "dxgi factory", Code: 0x80004002}}
	err := initStages(rec, 1)

	var sce *SurfaceCreationError
	if !errors.As(err, &sce) {
		t.Errorf("expected a SurfaceCreationError, got %T", err)
	} else if sce.Link != "dxgi factory" {
		t.Errorf("wrong link: %q", sce.Link)
	}

	var dce *DeviceCreationError
	if errors.As(err, &dce) {
		t.Errorf("surface failure reported as a device error")
	}
}
