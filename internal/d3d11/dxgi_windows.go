// internal/d3d11/dxgi_windows.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build windows

package d3d11

import (
	"syscall"
	"unsafe"
)

// Adapter returns the adapter the device was created on.
func (d *IDXGIDevice) Adapter() (*IDXGIAdapter, error) {
	var adapter *IDXGIAdapter
	r, _, _ := syscall.SyscallN(d.Vtbl.GetAdapter,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&adapter)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IDXGIDevice::GetAdapter", Code: uint32(r)}
	}
	return adapter, nil
}

func (d *IDXGIDevice) Release() {
	syscall.SyscallN(d.Vtbl.Release, uintptr(unsafe.Pointer(d)))
}

// Factory returns the factory that enumerated the adapter.
func (a *IDXGIAdapter) Factory() (*IDXGIFactory, error) {
	var factory *IDXGIFactory
	r, _, _ := syscall.SyscallN(a.Vtbl.GetParent,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&IID_IDXGIFactory)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IDXGIAdapter::GetParent", Code: uint32(r)}
	}
	return factory, nil
}

func (a *IDXGIAdapter) Release() {
	syscall.SyscallN(a.Vtbl.Release, uintptr(unsafe.Pointer(a)))
}

func (f *IDXGIFactory) CreateSwapChain(dev *Device, desc *DXGI_SWAP_CHAIN_DESC) (*IDXGISwapChain, error) {
	var swchain *IDXGISwapChain
	r, _, _ := syscall.SyscallN(f.Vtbl.CreateSwapChain,
		uintptr(unsafe.Pointer(f)),
		uintptr(unsafe.Pointer(dev)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&swchain)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IDXGIFactory::CreateSwapChain", Code: uint32(r)}
	}
	return swchain, nil
}

func (f *IDXGIFactory) Release() {
	syscall.SyscallN(f.Vtbl.Release, uintptr(unsafe.Pointer(f)))
}

// GetBuffer returns the swap chain buffer at the given index as the
// interface identified by riid.
func (s *IDXGISwapChain) GetBuffer(index uint32, riid *GUID) (*Texture2D, error) {
	var tex *Texture2D
	r, _, _ := syscall.SyscallN(s.Vtbl.GetBuffer,
		uintptr(unsafe.Pointer(s)),
		uintptr(index),
		uintptr(unsafe.Pointer(riid)),
		uintptr(unsafe.Pointer(&tex)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IDXGISwapChain::GetBuffer", Code: uint32(r)}
	}
	return tex, nil
}

func (s *IDXGISwapChain) Present(syncInterval uint32, flags uint32) error {
	r, _, _ := syscall.SyscallN(s.Vtbl.Present,
		uintptr(unsafe.Pointer(s)),
		uintptr(syncInterval),
		uintptr(flags),
	)
	if r != 0 {
		return ErrorCode{Name: "IDXGISwapChain::Present", Code: uint32(r)}
	}
	return nil
}

func (s *IDXGISwapChain) Release() {
	syscall.SyscallN(s.Vtbl.Release, uintptr(unsafe.Pointer(s)))
}
