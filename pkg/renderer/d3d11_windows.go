// pkg/renderer/d3d11_windows.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build windows

package renderer

import (
	"errors"

	"rotatingcube/internal/d3d11"
	"rotatingcube/pkg/log"
)

// Direct3D11Renderer implements the Renderer interface with Direct3D 11.
type Direct3D11Renderer struct {
	lg *log.Logger

	dev     *d3d11.Device
	ctx     *d3d11.DeviceContext
	swchain *d3d11.IDXGISwapChain

	renderTarget *d3d11.RenderTargetView
	depthTexture *d3d11.Texture2D
	depthView    *d3d11.DepthStencilView
}

// NewDirect3D11Renderer creates a Direct3D 11 renderer presenting to the
// window identified by hwnd.
func NewDirect3D11Renderer(hwnd uintptr, lg *log.Logger) (Renderer, error) {
	lg.Infof("Starting Direct3D11Renderer initialization")
	r := &Direct3D11Renderer{lg: lg}
	if err := initStages(r, hwnd); err != nil {
		r.Dispose()
		return nil, err
	}
	lg.Infof("Finished Direct3D11Renderer initialization")
	return r, nil
}

// statusCode pulls the driver HRESULT out of an error from the bindings,
// if there is one.
func statusCode(err error) StatusCode {
	var ec d3d11.ErrorCode
	if errors.As(err, &ec) {
		return StatusCode(ec.Code)
	}
	return 0
}

func (d3d *Direct3D11Renderer) InitDevice() error {
	dev, ctx, featureLevel, err := d3d11.CreateDevice(d3d11.DRIVER_TYPE_HARDWARE,
		d3d11.CREATE_DEVICE_DEBUG|d3d11.CREATE_DEVICE_SINGLETHREADED)
	if err != nil {
		return &DeviceCreationError{Code: statusCode(err), Err: err}
	}
	d3d.dev, d3d.ctx = dev, ctx
	d3d.lg.Infof("Direct3D feature level: 0x%x", featureLevel)
	return nil
}

func (d3d *Direct3D11Renderer) InitSurface(hwnd uintptr) error {
	if hwnd == 0 {
		return &SurfaceCreationError{Link: "window handle"}
	}

	// Width and height are left zero so the driver sizes the buffers from
	// the window's client area.
	desc := d3d11.DXGI_SWAP_CHAIN_DESC{
		BufferDesc: d3d11.DXGI_MODE_DESC{
			RefreshRate: d3d11.DXGI_RATIONAL{Numerator: 60, Denominator: 1},
			Format:      d3d11.DXGI_FORMAT_R8G8B8A8_UNORM,
		},
		SampleDesc:   d3d11.DXGI_SAMPLE_DESC{Count: 1, Quality: 0},
		BufferUsage:  d3d11.DXGI_USAGE_RENDER_TARGET_OUTPUT,
		BufferCount:  1,
		OutputWindow: hwnd,
		Windowed:     1,
		SwapEffect:   d3d11.DXGI_SWAP_EFFECT_DISCARD,
	}

	// The swap chain has to come from the factory that made the device, so
	// walk device -> adapter -> factory.
	dxgiDev, err := d3d.dev.DXGIDevice()
	if err != nil {
		return &SurfaceCreationError{Link: "dxgi device", Code: statusCode(err), Err: err}
	}
	defer dxgiDev.Release()

	adapter, err := dxgiDev.Adapter()
	if err != nil {
		return &SurfaceCreationError{Link: "dxgi adapter", Code: statusCode(err), Err: err}
	}
	defer adapter.Release()

	factory, err := adapter.Factory()
	if err != nil {
		return &SurfaceCreationError{Link: "dxgi factory", Code: statusCode(err), Err: err}
	}
	defer factory.Release()

	swchain, err := factory.CreateSwapChain(d3d.dev, &desc)
	if err != nil {
		return &SurfaceCreationError{Link: "swap chain", Code: statusCode(err), Err: err}
	}
	d3d.swchain = swchain
	return nil
}

func (d3d *Direct3D11Renderer) InitTargets() error {
	backBuffer, err := d3d.swchain.GetBuffer(0, &d3d11.IID_ID3D11Texture2D)
	if err != nil {
		return &TargetCreationError{Step: "back buffer", Code: statusCode(err), Err: err}
	}
	defer backBuffer.Release()

	rtv, err := d3d.dev.CreateRenderTargetView(backBuffer)
	if err != nil {
		return &TargetCreationError{Step: "render target view", Code: statusCode(err), Err: err}
	}
	d3d.renderTarget = rtv

	depthDesc := d3d11.TEXTURE2D_DESC{
		Width:      depthBufferWidth,
		Height:     depthBufferHeight,
		MipLevels:  1,
		ArraySize:  1,
		Format:     d3d11.DXGI_FORMAT_D24_UNORM_S8_UINT,
		SampleDesc: d3d11.DXGI_SAMPLE_DESC{Count: 1, Quality: 0},
		Usage:      d3d11.USAGE_DEFAULT,
		BindFlags:  d3d11.BIND_DEPTH_STENCIL,
	}
	depthTexture, err := d3d.dev.CreateTexture2D(&depthDesc)
	if err != nil {
		return &TargetCreationError{Step: "depth texture", Code: statusCode(err), Err: err}
	}
	d3d.depthTexture = depthTexture

	dsv, err := d3d.dev.CreateDepthStencilView(depthTexture)
	if err != nil {
		return &TargetCreationError{Step: "depth stencil view", Code: statusCode(err), Err: err}
	}
	d3d.depthView = dsv

	d3d.ctx.OMSetRenderTargets(d3d.renderTarget, d3d.depthView)
	return nil
}

func (d3d *Direct3D11Renderer) InitViewport() error {
	d3d.ctx.RSSetViewport(&d3d11.VIEWPORT{
		TopLeftX: 0,
		TopLeftY: 0,
		Width:    viewportWidth,
		Height:   viewportHeight,
		MinDepth: 0,
		MaxDepth: 1,
	})
	return nil
}

func (d3d *Direct3D11Renderer) ClearRenderTarget(color RGB) {
	d3d.ctx.ClearRenderTargetView(d3d.renderTarget, [4]float32{color.R, color.G, color.B, 1})
}

func (d3d *Direct3D11Renderer) ClearDepthStencil(depth float32, stencil uint8) {
	d3d.ctx.ClearDepthStencilView(d3d.depthView, d3d11.CLEAR_DEPTH|d3d11.CLEAR_STENCIL,
		depth, stencil)
}

// Present shows the completed frame immediately, without waiting for the
// vertical blank. Presentation failures are not fatal so the error is
// dropped; the next frame presents again anyway.
func (d3d *Direct3D11Renderer) Present() {
	_ = d3d.swchain.Present(0, 0)
}

func (d3d *Direct3D11Renderer) Dispose() {
	if d3d.depthView != nil {
		d3d.depthView.Release()
		d3d.depthView = nil
	}
	if d3d.depthTexture != nil {
		d3d.depthTexture.Release()
		d3d.depthTexture = nil
	}
	if d3d.renderTarget != nil {
		d3d.renderTarget.Release()
		d3d.renderTarget = nil
	}
	if d3d.swchain != nil {
		d3d.swchain.Release()
		d3d.swchain = nil
	}
	if d3d.ctx != nil {
		d3d.ctx.Release()
		d3d.ctx = nil
	}
	if d3d.dev != nil {
		d3d.dev.Release()
		d3d.dev = nil
	}
}
