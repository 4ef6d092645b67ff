// main_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"testing"

	"rotatingcube/pkg/log"
	"rotatingcube/pkg/platform"
	"rotatingcube/pkg/renderer"
)

// setupRunTest points the logger and the config file at a temp directory
// and restores the platform/renderer constructors afterwards.
func setupRunTest(t *testing.T) {
	dir := t.TempDir()
	*logDir = dir
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	origPlatform, origRenderer := newPlatform, newRenderer
	t.Cleanup(func() { newPlatform, newRenderer = origPlatform, origRenderer })
}

func TestRunPlatformFailure(t *testing.T) {
	setupRunTest(t)
	newPlatform = func(*platform.Config, *log.Logger) (platform.Platform, error) {
		return nil, &platform.PlatformInitError{Err: errors.New("no display")}
	}

	if code := run(); code != 1 {
		t.Errorf("platform failure exited %d, expected 1", code)
	}
}

func TestRunRendererFailure(t *testing.T) {
	setupRunTest(t)
	newPlatform = func(*platform.Config, *log.Logger) (platform.Platform, error) {
		return &testPlatform{quitAfter: 1}, nil
	}
	newRenderer = func(uintptr, *log.Logger) (renderer.Renderer, error) {
		return nil, &renderer.DeviceCreationError{Code: 0x887a0005}
	}

	if code := run(); code != 1 {
		t.Errorf("renderer failure exited %d, expected 1", code)
	}
}

func TestRunCleanQuit(t *testing.T) {
	setupRunTest(t)
	plat := &testPlatform{quitAfter: 1}
	rend := &testRenderer{}
	newPlatform = func(*platform.Config, *log.Logger) (platform.Platform, error) {
		return plat, nil
	}
	newRenderer = func(uintptr, *log.Logger) (renderer.Renderer, error) {
		return rend, nil
	}

	if code := run(); code != 0 {
		t.Errorf("clean quit exited %d, expected 0", code)
	}
	if rend.presents == 0 {
		t.Errorf("no frame was presented before the quit")
	}
}
