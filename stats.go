// stats.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"log/slog"
	"time"
)

var stats Stats

type Stats struct {
	startTime time.Time
	redraws   int
}

func (s Stats) LogValue() slog.Value {
	elapsed := time.Since(s.startTime).Seconds()
	fps := float64(s.redraws)
	if elapsed > 0 {
		fps /= elapsed
	}
	return slog.GroupValue(
		slog.Int("redraws", s.redraws),
		slog.Duration("uptime", time.Since(s.startTime)),
		slog.Float64("fps", fps))
}
