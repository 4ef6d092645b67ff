// pkg/platform/platform_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestInitErrors(t *testing.T) {
	inner := errors.New("video subsystem unavailable")

	pie := &PlatformInitError{Err: inner}
	if !strings.Contains(pie.Error(), "video subsystem unavailable") {
		t.Errorf("init error doesn't include the underlying message: %q", pie.Error())
	}
	if !errors.Is(pie, inner) {
		t.Errorf("init error doesn't unwrap to the underlying error")
	}

	wce := &WindowCreationError{Err: inner}
	if !strings.Contains(wce.Error(), "video subsystem unavailable") {
		t.Errorf("window error doesn't include the underlying message: %q", wce.Error())
	}
	if !errors.Is(wce, inner) {
		t.Errorf("window error doesn't unwrap to the underlying error")
	}

	// The two kinds must remain distinguishable with errors.As.
	var asPie *PlatformInitError
	if errors.As(error(wce), &asPie) {
		t.Errorf("window creation error matched as platform init error")
	}
}
