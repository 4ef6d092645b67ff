// internal/d3d11/d3d11_windows.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build windows

// Package d3d11 holds just enough of a hand-rolled Direct3D 11 and DXGI
// binding to create a device, a swap chain, and the color and depth
// targets, and to clear and present frames. COM methods are dispatched
// with syscall.SyscallN through vtables laid out in types_windows.go.
package d3d11

import (
	"fmt"
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3d11DLL              = windows.NewLazySystemDLL("d3d11.dll")
	procD3D11CreateDevice = d3d11DLL.NewProc("D3D11CreateDevice")
)

// ErrorCode is an error carrying the HRESULT of a failed call.
type ErrorCode struct {
	Name string
	Code uint32
}

func (e ErrorCode) Error() string {
	return fmt.Sprintf("%s: %#x", e.Name, e.Code)
}

// CreateDevice creates a Direct3D 11 device and its immediate context on
// the default adapter, letting the runtime pick the best feature level.
// The chosen feature level is returned alongside the device.
func CreateDevice(driverType uint32, flags uint32) (*Device, *DeviceContext, uint32, error) {
	if err := procD3D11CreateDevice.Find(); err != nil {
		return nil, nil, 0, err
	}
	var (
		dev          *Device
		ctx          *DeviceContext
		featureLevel uint32
	)
	r, _, _ := procD3D11CreateDevice.Call(
		0,                   // pAdapter
		uintptr(driverType), // DriverType
		0,                   // Software
		uintptr(flags),      // Flags
		0,                   // pFeatureLevels
		0,                   // FeatureLevels
		SDK_VERSION,         // SDKVersion
		uintptr(unsafe.Pointer(&dev)),
		uintptr(unsafe.Pointer(&featureLevel)),
		uintptr(unsafe.Pointer(&ctx)),
	)
	if r != 0 {
		return nil, nil, 0, ErrorCode{Name: "D3D11CreateDevice", Code: uint32(r)}
	}
	return dev, ctx, featureLevel, nil
}

func (d *Device) CreateTexture2D(desc *TEXTURE2D_DESC) (*Texture2D, error) {
	var tex *Texture2D
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateTexture2D,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		0, // pInitialData
		uintptr(unsafe.Pointer(&tex)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateTexture2D", Code: uint32(r)}
	}
	return tex, nil
}

func (d *Device) CreateRenderTargetView(res *Texture2D) (*RenderTargetView, error) {
	var view *RenderTargetView
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateRenderTargetView,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		0, // pDesc
		uintptr(unsafe.Pointer(&view)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateRenderTargetView", Code: uint32(r)}
	}
	return view, nil
}

func (d *Device) CreateDepthStencilView(res *Texture2D) (*DepthStencilView, error) {
	var view *DepthStencilView
	r, _, _ := syscall.SyscallN(d.Vtbl.CreateDepthStencilView,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		0, // pDesc
		uintptr(unsafe.Pointer(&view)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateDepthStencilView", Code: uint32(r)}
	}
	return view, nil
}

// DXGIDevice queries the device's DXGI interface, the entry point for the
// walk up to the factory that created it.
func (d *Device) DXGIDevice() (*IDXGIDevice, error) {
	var dev *IDXGIDevice
	r, _, _ := syscall.SyscallN(d.Vtbl.QueryInterface,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&IID_IDXGIDevice)),
		uintptr(unsafe.Pointer(&dev)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::QueryInterface", Code: uint32(r)}
	}
	return dev, nil
}

func (d *Device) Release() {
	syscall.SyscallN(d.Vtbl.Release, uintptr(unsafe.Pointer(d)))
}

func (c *DeviceContext) OMSetRenderTargets(rtv *RenderTargetView, dsv *DepthStencilView) {
	syscall.SyscallN(c.Vtbl.OMSetRenderTargets,
		uintptr(unsafe.Pointer(c)),
		1, // NumViews
		uintptr(unsafe.Pointer(&rtv)),
		uintptr(unsafe.Pointer(dsv)),
	)
}

func (c *DeviceContext) RSSetViewport(viewport *VIEWPORT) {
	syscall.SyscallN(c.Vtbl.RSSetViewports,
		uintptr(unsafe.Pointer(c)),
		1, // NumViewports
		uintptr(unsafe.Pointer(viewport)),
	)
}

func (c *DeviceContext) ClearRenderTargetView(rtv *RenderTargetView, color [4]float32) {
	syscall.SyscallN(c.Vtbl.ClearRenderTargetView,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(rtv)),
		uintptr(unsafe.Pointer(&color)),
	)
}

func (c *DeviceContext) ClearDepthStencilView(dsv *DepthStencilView, flags uint32, depth float32, stencil uint8) {
	syscall.SyscallN(c.Vtbl.ClearDepthStencilView,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(dsv)),
		uintptr(flags),
		uintptr(math.Float32bits(depth)),
		uintptr(stencil),
	)
}

func (c *DeviceContext) Release() {
	syscall.SyscallN(c.Vtbl.Release, uintptr(unsafe.Pointer(c)))
}

func (t *Texture2D) Release() {
	syscall.SyscallN(t.Vtbl.Release, uintptr(unsafe.Pointer(t)))
}

func (v *RenderTargetView) Release() {
	syscall.SyscallN(v.Vtbl.Release, uintptr(unsafe.Pointer(v)))
}

func (v *DepthStencilView) Release() {
	syscall.SyscallN(v.Vtbl.Release, uintptr(unsafe.Pointer(v)))
}
