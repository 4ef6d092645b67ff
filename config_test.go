// config_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"testing"

	"rotatingcube/pkg/platform"
)

func TestDefaultConfig(t *testing.T) {
	config := defaultConfig()
	if config.InitialWindowSize != [2]int{platform.DefaultWindowWidth, platform.DefaultWindowHeight} {
		t.Errorf("unexpected default window size: %v", config.InitialWindowSize)
	}
	if config.InitialWindowPosition != [2]int{-1, -1} {
		t.Errorf("default window position should ask for centering: %v", config.InitialWindowPosition)
	}
	if config.Version != configVersion {
		t.Errorf("default config version %d, expected %d", config.Version, configVersion)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	config := &GlobalConfig{
		Config: platform.Config{
			InitialWindowSize:     [2]int{1024, 768},
			InitialWindowPosition: [2]int{50, 75},
		},
		Version: configVersion,
	}

	contents, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		t.Fatalf("unable to marshal config: %v", err)
	}

	var loaded GlobalConfig
	if err := json.Unmarshal(contents, &loaded); err != nil {
		t.Fatalf("unable to unmarshal config: %v", err)
	}
	if loaded != *config {
		t.Errorf("config didn't survive a round trip: %+v vs %+v", loaded, *config)
	}
}
