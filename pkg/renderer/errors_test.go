// pkg/renderer/errors_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"errors"
	"strings"
	"testing"
)

func TestStatusCodeFormat(t *testing.T) {
	for _, tc := range []struct {
		code     StatusCode
		expected string
	}{
		{0x887a0005, "0x887a0005"},
		{0x80004002, "0x80004002"},
		{0x1, "0x00000001"},
	} {
		if s := tc.code.String(); s != tc.expected {
			t.Errorf("status %d formatted as %q, expected %q", uint32(tc.code), s, tc.expected)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	dce := &DeviceCreationError{Code: 0x887a0005}
	if !strings.Contains(dce.Error(), "0x887a0005") {
		t.Errorf("device error doesn't carry the status code: %q", dce.Error())
	}

	sce := &SurfaceCreationError{Link: "dxgi adapter", Code: 0x80004002}
	if !strings.Contains(sce.Error(), "dxgi adapter") {
		t.Errorf("surface error doesn't name the failing link: %q", sce.Error())
	}

	tce := &TargetCreationError{Step: "depth texture", Code: 0x80070057}
	if !strings.Contains(tce.Error(), "depth texture") {
		t.Errorf("target error doesn't name the failing step: %q", tce.Error())
	}
	if !strings.Contains(tce.Error(), "0x80070057") {
		t.Errorf("target error doesn't carry the status code: %q", tce.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("glInit failed")
	dce := &DeviceCreationError{Err: inner}
	if !errors.Is(dce, inner) {
		t.Errorf("device error doesn't unwrap to the underlying error")
	}
	if !strings.Contains(dce.Error(), "glInit failed") {
		t.Errorf("device error doesn't include the underlying message: %q", dce.Error())
	}
}
