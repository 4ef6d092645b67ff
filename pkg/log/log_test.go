// pkg/log/log_test.go
// Copyright(c) 2026 rotatingcube contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestLoggerWritesJSON(t *testing.T) {
	dir := t.TempDir()
	lg := New("info", dir)

	lg.Infof("test message %d", 42)
	lg.Warn("test warning")

	f, err := os.Open(lg.LogFile)
	if err != nil {
		t.Fatalf("unable to open log file: %v", err)
	}
	defer f.Close()

	var sawInfo, sawWarn bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Errorf("log line isn't valid JSON: %q", scanner.Text())
			continue
		}
		if _, ok := entry["time"]; !ok {
			t.Errorf("log entry has no time: %q", scanner.Text())
		}
		msg, _ := entry["msg"].(string)
		if strings.Contains(msg, "test message 42") {
			sawInfo = true
			if _, ok := entry["callstack"]; !ok {
				t.Errorf("log entry has no callstack: %q", scanner.Text())
			}
		}
		if msg == "test warning" {
			sawWarn = true
		}
	}

	if !sawInfo {
		t.Errorf("info message not found in the log")
	}
	if !sawWarn {
		t.Errorf("warning not found in the log")
	}
}

func TestLogLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	lg := New("warn", dir)

	lg.Info("should be dropped")
	lg.Warn("should be kept")

	contents, err := os.ReadFile(lg.LogFile)
	if err != nil {
		t.Fatalf("unable to read log file: %v", err)
	}
	if strings.Contains(string(contents), "should be dropped") {
		t.Errorf("info message logged at warn level")
	}
	if !strings.Contains(string(contents), "should be kept") {
		t.Errorf("warning not logged at warn level")
	}
}

func TestNilLogger(t *testing.T) {
	var lg *Logger
	// Discarded, but must not crash.
	lg.Debug("debug")
	lg.Debugf("debug %d", 1)
	lg.Info("info")
	lg.Infof("info %d", 2)
	lg.Warn("warn")
	lg.Warnf("warn %d", 3)
	lg.Error("error")
	lg.Errorf("error %d", 4)
}
