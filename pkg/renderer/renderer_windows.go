// pkg/renderer/renderer_windows.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build windows

package renderer

import "rotatingcube/pkg/log"

// NewRenderer creates a new Direct3D 11 renderer for Windows.
func NewRenderer(hwnd uintptr, lg *log.Logger) (Renderer, error) {
	return NewDirect3D11Renderer(hwnd, lg)
}
