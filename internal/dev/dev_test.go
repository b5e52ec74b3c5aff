package dev

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withDebug(t *testing.T, set, path string) {
	t.Helper()
	oldSet, oldPath := debugSet, debugPath
	debugSet, debugPath = set, path
	t.Cleanup(func() { debugSet, debugPath = oldSet, oldPath })
}

func TestDebug_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viso.log")
	withDebug(t, "", path)

	Debug("nothing")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file written while debugging is off: %v", err)
	}
}

func TestDebugf_Enabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viso.log")
	withDebug(t, "1", path)

	Debugf("cursor %d", 3)
	Debug("second")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"cursor 3"`) || !strings.Contains(got, `"second"`) {
		t.Errorf("log content = %q", got)
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("log has %d lines, want 2", n)
	}
}

func TestDebug_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "viso.log")
	withDebug(t, "1", path)

	Debugf("cursor %d", 1)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file unexpectedly present: %v", err)
	}
}
