// pkg/platform/platform.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform provides the window and event-handling shell for the
// application: it brings up the OS windowing subsystems, creates the
// application window, and surfaces the quit request from the user. Two
// implementations are provided: SDL2 on Windows and GLFW elsewhere.
package platform

import "fmt"

const WindowTitle = "Rotating Cube"

const (
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// Platform is the interface that abstracts platform-specific features
// like creating windows and handling window events.
type Platform interface {
	// ProcessEvents handles pending window events. It never blocks;
	// returns true if an event of interest was seen. Shells that can't
	// observe individual events only report quit requests.
	ProcessEvents() bool
	// PostRender performs the buffer swap on shells that own it.
	PostRender()
	// Dispose is called when the application is shutting down and is when
	// resources are freed.
	Dispose()
	// ShouldStop returns true once the user has asked to close the window.
	ShouldStop() bool
	// CancelShouldStop cancels a pending quit request.
	CancelShouldStop()
	// SetWindowTitle sets the title of the window.
	SetWindowTitle(text string)
	// WindowHandle returns the native handle of the window (an HWND on
	// Windows), or 0 on platforms where no consumer needs one.
	WindowHandle() uintptr
	// WindowSize returns the size of the window.
	WindowSize() [2]int
	// WindowPosition returns the position of the window on the screen.
	WindowPosition() [2]int
}

type Config struct {
	InitialWindowSize [2]int
	// A negative coordinate centers the window on the primary display.
	InitialWindowPosition [2]int
}

// PlatformInitError indicates that the windowing subsystems could not be
// started at all.
type PlatformInitError struct {
	Err error
}

func (e *PlatformInitError) Error() string {
	return fmt.Sprintf("unable to initialize windowing platform: %v", e.Err)
}

func (e *PlatformInitError) Unwrap() error { return e.Err }

// WindowCreationError indicates that the OS refused to create the
// application window.
type WindowCreationError struct {
	Err error
}

func (e *WindowCreationError) Error() string {
	return fmt.Sprintf("unable to create application window: %v", e.Err)
}

func (e *WindowCreationError) Unwrap() error { return e.Err }
