// main.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// rotatingcube opens a window, brings up a hardware rendering pipeline
// behind it, and runs a frame loop that clears and presents until the
// user closes the window. The scene itself is still to come.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"rotatingcube/pkg/log"
	"rotatingcube/pkg/platform"
	"rotatingcube/pkg/renderer"
	"rotatingcube/pkg/util"

	"github.com/apenwarr/fixconsole"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write CPU profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
)

func init() {
	// The platform shell and the rendering backend both require that they
	// are called from the same OS thread the process started on.
	runtime.LockOSThread()
}

// Indirected so that run can be exercised without a display or a GPU.
var (
	newPlatform = platform.New
	newRenderer = renderer.NewRenderer
)

func main() {
	os.Exit(run())
}

func run() int {
	// Make console output visible when launched from a Windows console;
	// the fatal init messages below go to stderr.
	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchCrash()

	profiler, err := util.CreateProfiler(*cpuprofile, *memprofile)
	if err != nil {
		lg.Errorf("%v", err)
	}
	defer profiler.Cleanup()

	config := LoadOrMakeDefaultConfig(lg)

	plat, err := newPlatform(&config.Config, lg)
	if err != nil {
		lg.Errorf("Unable to create application window: %v", err)
		fmt.Fprintf(os.Stderr, "Unable to create application window: %v\n", err)
		return 1
	}
	defer plat.Dispose()

	rend, err := newRenderer(plat.WindowHandle(), lg)
	if err != nil {
		lg.Errorf("Unable to initialize rendering: %v", err)
		fmt.Fprintf(os.Stderr, "Unable to initialize rendering: %v\n", err)
		return 1
	}
	defer rend.Dispose()

	runFrameLoop(plat, rend, lg)

	config.SaveIfChanged(plat, lg)
	return 0
}
