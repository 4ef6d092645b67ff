// pkg/renderer/pipeline.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

// Each backend is brought up through the same four stages, in a strict
// order: every stage consumes handles produced by the one before it, so a
// failed stage must keep all later ones from running.
type stagedBackend interface {
	// InitDevice acquires the rendering device and its command context.
	InitDevice() error
	// InitSurface creates the presentation surface (swap chain) bound to
	// the native window handle.
	InitSurface(hwnd uintptr) error
	// InitTargets derives the color target from the surface, allocates
	// the depth/stencil buffer, and binds the pair for output.
	InitTargets() error
	// InitViewport configures the rasterizer output rectangle and depth
	// range.
	InitViewport() error
}

// initStages runs the bring-up stages in order, stopping at the first
// failure. Errors are returned unchanged; there is no retry or fallback.
func initStages(b stagedBackend, hwnd uintptr) error {
	if err := b.InitDevice(); err != nil {
		return err
	}
	if err := b.InitSurface(hwnd); err != nil {
		return err
	}
	if err := b.InitTargets(); err != nil {
		return err
	}
	return b.InitViewport()
}
