// config.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"rotatingcube/pkg/log"
	"rotatingcube/pkg/platform"
)

// Slightly convoluted, but the full window configuration is stored in the
// platform package so that window creation doesn't depend on this one.
type GlobalConfig struct {
	platform.Config
	Version int
}

const configVersion = 1

func configFilePath(lg *log.Logger) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}

	dir = filepath.Join(dir, "RotatingCube")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		lg.Errorf("%s: unable to make directory for config file: %v", dir, err)
	}

	return filepath.Join(dir, "config.json")
}

func defaultConfig() *GlobalConfig {
	return &GlobalConfig{
		Config: platform.Config{
			InitialWindowSize:     [2]int{platform.DefaultWindowWidth, platform.DefaultWindowHeight},
			InitialWindowPosition: [2]int{-1, -1},
		},
		Version: configVersion,
	}
}

// LoadOrMakeDefaultConfig returns the saved configuration if there is a
// usable one and the built-in defaults otherwise. A corrupt or
// incompatible config file is not an error; it is replaced at the next
// save.
func LoadOrMakeDefaultConfig(lg *log.Logger) *GlobalConfig {
	fn := configFilePath(lg)
	lg.Infof("Loading config from: %s", fn)

	contents, err := os.ReadFile(fn)
	if err != nil {
		lg.Infof("%s: no saved config: %v", fn, err)
		return defaultConfig()
	}

	var config GlobalConfig
	if err := json.Unmarshal(contents, &config); err != nil {
		lg.Errorf("%s: unable to parse config file: %v", fn, err)
		return defaultConfig()
	}
	if config.Version != configVersion {
		lg.Infof("%s: ignoring saved config with version %d", fn, config.Version)
		return defaultConfig()
	}

	return &config
}

func (gc *GlobalConfig) Save(lg *log.Logger) error {
	fn := configFilePath(lg)
	lg.Infof("Saving config to: %s", fn)

	contents, err := json.MarshalIndent(gc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(fn, contents, 0o600)
}

// SaveIfChanged records the final window geometry and writes the config
// out, skipping the write when nothing has changed since it was loaded.
func (gc *GlobalConfig) SaveIfChanged(plat platform.Platform, lg *log.Logger) {
	gc.InitialWindowSize = plat.WindowSize()
	gc.InitialWindowPosition = plat.WindowPosition()
	gc.Version = configVersion

	fn := configFilePath(lg)
	onDisk, err := os.ReadFile(fn)
	if err == nil {
		if current, err := json.MarshalIndent(gc, "", "    "); err == nil && string(current) == string(onDisk) {
			return
		}
	}

	if err := gc.Save(lg); err != nil {
		lg.Errorf("Unable to save config: %v", err)
	}
}
