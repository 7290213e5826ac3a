package execution

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newWatchTarget(t *testing.T) (exe string, reloads chan struct{}, w *Watcher) {
	t.Helper()
	dir := t.TempDir()
	exe = filepath.Join(dir, "tests")
	reloads = make(chan struct{}, 8)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	w, err := NewWatcher(exe, func() { reloads <- struct{}{} }, logger)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return exe, reloads, w
}

func waitReload(t *testing.T, reloads chan struct{}, want bool) {
	t.Helper()
	select {
	case <-reloads:
		if !want {
			t.Fatal("unexpected reload")
		}
	case <-time.After(2 * time.Second):
		if want {
			t.Fatal("expected reload, got none")
		}
	}
}

func TestWatcherReloadsOnExecutableCreate(t *testing.T) {
	exe, reloads, _ := newWatchTarget(t)

	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitReload(t, reloads, true)
}

func TestWatcherIgnoresNonExecutableWrite(t *testing.T) {
	exe, reloads, _ := newWatchTarget(t)

	// a plain file at the watched path is a build in progress
	if err := os.WriteFile(exe, []byte("partial"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitReload(t, reloads, false)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	exe, reloads, _ := newWatchTarget(t)

	other := filepath.Join(filepath.Dir(exe), "unrelated")
	if err := os.WriteFile(other, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitReload(t, reloads, false)
}

func TestWatcherReloadsOnRemove(t *testing.T) {
	exe, reloads, _ := newWatchTarget(t)

	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitReload(t, reloads, true)

	if err := os.Remove(exe); err != nil {
		t.Fatalf("remove: %v", err)
	}
	waitReload(t, reloads, true)
}
