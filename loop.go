// loop.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"log/slog"
	"time"

	"rotatingcube/pkg/log"
	"rotatingcube/pkg/platform"
	"rotatingcube/pkg/renderer"
)

// runFrameLoop runs the main rendering loop until the platform reports
// that the user has asked to quit. Every iteration draws and presents a
// frame, including the one where the quit request arrives.
func runFrameLoop(plat platform.Platform, rend renderer.Renderer, lg *log.Logger) {
	stats.startTime = time.Now()
	for {
		plat.ProcessEvents()

		rend.ClearRenderTarget(renderer.BackgroundColor)
		rend.ClearDepthStencil(1, 0)

		// Scene rendering goes here.

		rend.Present()
		plat.PostRender()

		stats.redraws++
		if stats.redraws%18000 == 9000 {
			lg.Info("performance", slog.Any("stats", stats))
		}

		if plat.ShouldStop() {
			break
		}
	}
}
