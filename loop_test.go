// loop_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"testing"

	"rotatingcube/pkg/renderer"
)

// testPlatform quits after a fixed number of event polls.
type testPlatform struct {
	quitAfter   int
	polls       int
	stop        bool
	postRenders int
}

func (p *testPlatform) ProcessEvents() bool {
	p.polls++
	if p.polls >= p.quitAfter {
		p.stop = true
	}
	return true
}

func (p *testPlatform) PostRender()            { p.postRenders++ }
func (p *testPlatform) Dispose()               {}
func (p *testPlatform) ShouldStop() bool       { return p.stop }
func (p *testPlatform) CancelShouldStop()      { p.stop = false }
func (p *testPlatform) SetWindowTitle(string)  {}
func (p *testPlatform) WindowHandle() uintptr  { return 1 }
func (p *testPlatform) WindowSize() [2]int     { return [2]int{640, 480} }
func (p *testPlatform) WindowPosition() [2]int { return [2]int{100, 100} }

// testRenderer records the per-frame calls.
type testRenderer struct {
	clears      []renderer.RGB
	depthClears []float32
	stencils    []uint8
	presents    int
}

func (r *testRenderer) ClearRenderTarget(color renderer.RGB) { r.clears = append(r.clears, color) }
func (r *testRenderer) ClearDepthStencil(depth float32, stencil uint8) {
	r.depthClears = append(r.depthClears, depth)
	r.stencils = append(r.stencils, stencil)
}
func (r *testRenderer) Present() { r.presents++ }
func (r *testRenderer) Dispose() {}

func TestFrameLoopQuits(t *testing.T) {
	plat := &testPlatform{quitAfter: 5}
	rend := &testRenderer{}
	runFrameLoop(plat, rend, nil)

	if plat.polls != 5 {
		t.Errorf("loop ran %d iterations, expected 5", plat.polls)
	}
}

func TestFrameLoopDrawsEveryIteration(t *testing.T) {
	plat := &testPlatform{quitAfter: 3}
	rend := &testRenderer{}
	runFrameLoop(plat, rend, nil)

	// The final iteration, where the quit arrives, still draws and
	// presents.
	if len(rend.clears) != 3 || len(rend.depthClears) != 3 || rend.presents != 3 {
		t.Errorf("expected 3 of each per-frame call, got %d clears, %d depth clears, %d presents",
			len(rend.clears), len(rend.depthClears), rend.presents)
	}
	if plat.postRenders != 3 {
		t.Errorf("expected 3 PostRender calls, got %d", plat.postRenders)
	}
}

func TestFrameLoopClearValues(t *testing.T) {
	plat := &testPlatform{quitAfter: 1}
	rend := &testRenderer{}
	runFrameLoop(plat, rend, nil)

	if len(rend.clears) != 1 || !rend.clears[0].Equals(renderer.BackgroundColor) {
		t.Errorf("frame not cleared to the background color: %+v", rend.clears)
	}
	if len(rend.depthClears) != 1 || rend.depthClears[0] != 1 {
		t.Errorf("depth not cleared to 1: %+v", rend.depthClears)
	}
	if len(rend.stencils) != 1 || rend.stencils[0] != 0 {
		t.Errorf("stencil not cleared to 0: %+v", rend.stencils)
	}
}
