// pkg/renderer/renderer.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package renderer brings up the hardware rendering device, the
// presentation surface bound to the application window, and the color and
// depth targets, and then exposes the small set of per-frame operations
// that keep the window alive: clear, clear depth, present.
package renderer

// Renderer is the interface for the per-frame operations all backends
// provide.
type Renderer interface {
	// ClearRenderTarget clears the color target to the given color.
	ClearRenderTarget(color RGB)

	// ClearDepthStencil resets the depth/stencil target to the given
	// depth and stencil values.
	ClearDepthStencil(depth float32, stencil uint8)

	// Present swaps the back and front buffers so that the completed
	// frame is shown. It does not wait for the vertical blank.
	Present()

	// Dispose releases resources allocated by the renderer.
	Dispose()
}

const (
	viewportWidth  = 800
	viewportHeight = 600

	// TODO: the 640x480 depth buffer doesn't match the 800x600 viewport
	// (or the window); reconcile the three once real drawing lands.
	depthBufferWidth  = 640
	depthBufferHeight = 480
)

// BackgroundColor is what every frame is cleared to: cornflower blue.
var BackgroundColor = RGBFromHex(0x6495ed)
