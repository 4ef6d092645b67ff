// pkg/platform/sdl2_windows.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build windows

package platform

import (
	"rotatingcube/pkg/log"

	"github.com/veandco/go-sdl2/sdl"
)

// sdl2Platform implements the Platform interface using SDL2 for Windows.
type sdl2Platform struct {
	window      *sdl.Window
	config      *Config
	windowTitle string
	shouldStop  bool
}

// New returns a new instance of a Platform implemented with SDL2.
func New(config *Config, lg *log.Logger) (Platform, error) {
	lg.Info("Starting SDL2 initialization for Windows")

	// The audio subsystem is brought up alongside video and events but
	// nothing uses it yet.
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_AUDIO); err != nil {
		return nil, &PlatformInitError{Err: err}
	}

	version := sdl.Version{}
	sdl.GetVersion(&version)
	lg.Infof("SDL2: %d.%d.%d", version.Major, version.Minor, version.Patch)

	if config.InitialWindowSize[0] <= 0 || config.InitialWindowSize[1] <= 0 {
		config.InitialWindowSize = [2]int{DefaultWindowWidth, DefaultWindowHeight}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if config.InitialWindowPosition[0] >= 0 && config.InitialWindowPosition[1] >= 0 {
		x = int32(config.InitialWindowPosition[0])
		y = int32(config.InitialWindowPosition[1])
	}

	window, err := sdl.CreateWindow(
		WindowTitle,
		x, y,
		int32(config.InitialWindowSize[0]),
		int32(config.InitialWindowSize[1]),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, &WindowCreationError{Err: err}
	}

	lg.Info("Finished SDL2 initialization")

	return &sdl2Platform{
		config:      config,
		window:      window,
		windowTitle: WindowTitle,
	}, nil
}

func (p *sdl2Platform) Dispose() {
	p.window.Destroy()
	sdl.Quit()
}

func (p *sdl2Platform) ShouldStop() bool {
	return p.shouldStop
}

func (p *sdl2Platform) CancelShouldStop() {
	p.shouldStop = false
}

func (p *sdl2Platform) SetWindowTitle(text string) {
	if p.windowTitle != text {
		p.window.SetTitle(text)
		p.windowTitle = text
	}
}

// ProcessEvents polls at most one pending event per call, recording
// whether it was a request to quit. Everything else is dropped on the
// floor for now.
func (p *sdl2Platform) ProcessEvents() bool {
	event := sdl.PollEvent()
	if event == nil {
		return false
	}

	if _, ok := event.(*sdl.QuitEvent); ok {
		p.shouldStop = true
	}
	return true
}

func (p *sdl2Platform) PostRender() {
	// The buffer swap is handled by the renderer's Present call.
}

func (p *sdl2Platform) WindowSize() [2]int {
	w, h := p.window.GetSize()
	return [2]int{int(w), int(h)}
}

func (p *sdl2Platform) WindowPosition() [2]int {
	x, y := p.window.GetPosition()
	return [2]int{int(x), int(y)}
}

func (p *sdl2Platform) WindowHandle() uintptr {
	info, err := p.window.GetWMInfo()
	if err != nil {
		return 0
	}
	// On Windows, we need to get the HWND from the SysWMInfo.
	return uintptr(info.GetWindowsInfo().Window)
}
