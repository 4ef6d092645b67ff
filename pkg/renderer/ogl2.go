// pkg/renderer/ogl2.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build !windows

package renderer

import (
	"rotatingcube/pkg/log"

	"github.com/go-gl/gl/v2.1/gl"
)

// OpenGL2Renderer implements the Renderer interface with OpenGL 2.1. The
// rendering context and default framebuffer belong to the window, so the
// device and surface stages only have to bind and verify what the platform
// shell already created.
type OpenGL2Renderer struct {
	lg *log.Logger
}

// NewOpenGL2Renderer creates an OpenGL 2 renderer drawing into the window's
// current context.
func NewOpenGL2Renderer(lg *log.Logger) (Renderer, error) {
	lg.Infof("Starting OpenGL2Renderer initialization")
	r := &OpenGL2Renderer{lg: lg}
	if err := initStages(r, 0); err != nil {
		return nil, err
	}
	lg.Infof("Finished OpenGL2Renderer initialization")
	return r, nil
}

func (ogl2 *OpenGL2Renderer) InitDevice() error {
	if err := gl.Init(); err != nil {
		return &DeviceCreationError{Err: err}
	}
	ogl2.lg.Infof("OpenGL: %s, %s", gl.GoStr(gl.GetString(gl.VENDOR)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// InitSurface is a no-op: the window owns the OpenGL surface.
func (ogl2 *OpenGL2Renderer) InitSurface(hwnd uintptr) error { return nil }

// InitTargets is a no-op: the default framebuffer already carries color,
// depth, and stencil planes.
func (ogl2 *OpenGL2Renderer) InitTargets() error { return nil }

func (ogl2 *OpenGL2Renderer) InitViewport() error {
	gl.Viewport(0, 0, viewportWidth, viewportHeight)
	gl.DepthRange(0, 1)
	return nil
}

func (ogl2 *OpenGL2Renderer) ClearRenderTarget(color RGB) {
	gl.ClearColor(color.R, color.G, color.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (ogl2 *OpenGL2Renderer) ClearDepthStencil(depth float32, stencil uint8) {
	gl.ClearDepth(float64(depth))
	gl.ClearStencil(int32(stencil))
	gl.Clear(gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// Present flushes queued commands; the actual buffer swap happens in the
// platform shell's PostRender.
func (ogl2 *OpenGL2Renderer) Present() {
	gl.Flush()
}

func (ogl2 *OpenGL2Renderer) Dispose() {}
