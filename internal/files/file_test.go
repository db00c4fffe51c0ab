package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterPublishesOnClose(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.txt")
	w := NewWriter(dst)
	defer w.Cleanup()
	if _, err := w.Write([]byte("hello ")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("world")); err != nil {
		t.Fatal(err)
	}

	// Nothing is visible before Close.
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("destination exists before Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "hello world"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterCleanupDiscards(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := NewWriter(dst)
	if _, err := w.Write([]byte("new")); err != nil {
		t.Fatal(err)
	}
	w.Cleanup()

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "old"; got != want {
		t.Errorf("destination changed without Close: got %q, want %q", got, want)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestWriterKeepsExistingMode(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.sh")
	if err := os.WriteFile(dst, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dst, 0o755); err != nil {
		t.Fatal(err)
	}
	w := NewWriter(dst)
	defer w.Cleanup()
	if _, err := w.Write([]byte("#!/bin/sh\nexit 0\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := info.Mode().Perm(), os.FileMode(0o755); got != want {
		t.Errorf("mode: got %v, want %v", got, want)
	}
}

func TestWriterUseAfterClose(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.txt")
	w := NewWriter(dst)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("late")); err == nil {
		t.Error("Write after Close unexpectedly succeeded")
	}
	if err := w.Close(); err == nil {
		t.Error("second Close unexpectedly succeeded")
	}
}
