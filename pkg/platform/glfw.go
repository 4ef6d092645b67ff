// pkg/platform/glfw.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build !windows

package platform

import (
	"rotatingcube/pkg/log"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwPlatform implements the Platform interface using GLFW.
type glfwPlatform struct {
	window      *glfw.Window
	config      *Config
	windowTitle string
	anyEvents   bool
	shouldStop  bool
}

// New returns a new instance of a Platform implemented with a GLFW window
// of the configured size, centered on the primary display unless a
// position was saved.
func New(config *Config, lg *log.Logger) (Platform, error) {
	lg.Info("Starting GLFW initialization")
	if err := glfw.Init(); err != nil {
		return nil, &PlatformInitError{Err: err}
	}
	lg.Infof("GLFW: %s", glfw.GetVersionString())

	if config.InitialWindowSize[0] <= 0 || config.InitialWindowSize[1] <= 0 {
		config.InitialWindowSize = [2]int{DefaultWindowWidth, DefaultWindowHeight}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	// The default framebuffer carries the depth/stencil storage here, so
	// ask for a 24/8 layout up front.
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	// Start with an invisible window so that we can position it first.
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(config.InitialWindowSize[0], config.InitialWindowSize[1],
		WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &WindowCreationError{Err: err}
	}

	vm := glfw.GetPrimaryMonitor().GetVideoMode()
	pos := config.InitialWindowPosition
	if pos[0] < 0 || pos[1] < 0 || pos[0] > vm.Width || pos[1] > vm.Height {
		pos = [2]int{(vm.Width - config.InitialWindowSize[0]) / 2,
			(vm.Height - config.InitialWindowSize[1]) / 2}
	}
	window.SetPos(pos[0], pos[1])
	window.Show()
	window.MakeContextCurrent()

	// Present without waiting for the vertical blank.
	glfw.SwapInterval(0)

	lg.Info("Finished GLFW initialization")

	return &glfwPlatform{
		config:      config,
		window:      window,
		windowTitle: WindowTitle,
	}, nil
}

func (g *glfwPlatform) Dispose() {
	g.window.Destroy()
	glfw.Terminate()
}

func (g *glfwPlatform) ShouldStop() bool {
	return g.shouldStop
}

func (g *glfwPlatform) CancelShouldStop() {
	g.window.SetShouldClose(false)
	g.shouldStop = false
}

func (g *glfwPlatform) SetWindowTitle(text string) {
	if g.windowTitle != text {
		g.window.SetTitle(text)
		g.windowTitle = text
	}
}

// ProcessEvents pumps pending events. GLFW gives no per-event visibility
// here, so the return value only reflects a close request.
func (g *glfwPlatform) ProcessEvents() bool {
	g.anyEvents = false
	glfw.PollEvents()
	if g.window.ShouldClose() {
		g.shouldStop = true
		g.anyEvents = true
	}
	return g.anyEvents
}

func (g *glfwPlatform) PostRender() {
	g.window.SwapBuffers()
}

func (g *glfwPlatform) WindowSize() [2]int {
	w, h := g.window.GetSize()
	return [2]int{w, h}
}

func (g *glfwPlatform) WindowPosition() [2]int {
	x, y := g.window.GetPos()
	return [2]int{x, y}
}

func (g *glfwPlatform) WindowHandle() uintptr {
	// The OpenGL renderer works through the window's current GL context,
	// so there is no native handle to hand out.
	return 0
}
