// pkg/renderer/errors.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "fmt"

// StatusCode is a driver status code (an HRESULT on Windows) carried by
// the initialization errors so that driver failures can be diagnosed from
// the logs.
type StatusCode uint32

func (c StatusCode) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// The three error kinds below map one-to-one onto the bring-up stages;
// each stage reports only its own kind, and a reported error always stops
// the stages that follow. Code carries the driver status where there is
// one, Err the underlying library error where there isn't.

// DeviceCreationError indicates that the driver refused to create the
// rendering device or its command context.
type DeviceCreationError struct {
	Code StatusCode
	Err  error
}

func (e *DeviceCreationError) Error() string {
	s := "unable to create rendering device or device context"
	if e.Code != 0 {
		s += ": status " + e.Code.String()
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DeviceCreationError) Unwrap() error { return e.Err }

// SurfaceCreationError indicates a failure while creating the swap chain;
// Link names which step of the device-to-factory walk (or the swap chain
// creation itself) failed.
type SurfaceCreationError struct {
	Link string
	Code StatusCode
	Err  error
}

func (e *SurfaceCreationError) Error() string {
	s := "unable to create presentation surface: " + e.Link
	if e.Code != 0 {
		s += ": status " + e.Code.String()
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *SurfaceCreationError) Unwrap() error { return e.Err }

// TargetCreationError indicates a failure while deriving the color target
// from the swap chain or allocating the depth/stencil buffer; Step names
// the failing sub-step.
type TargetCreationError struct {
	Step string
	Code StatusCode
	Err  error
}

func (e *TargetCreationError) Error() string {
	s := "unable to create frame targets: " + e.Step
	if e.Code != 0 {
		s += ": status " + e.Code.String()
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *TargetCreationError) Unwrap() error { return e.Err }
