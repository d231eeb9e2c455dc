package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := fs.WriteFile(path, []byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "a", "b", "out.bin")

	if err := fs.WriteFile(path, []byte{1, 2, 3}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	fs := New()
	if _, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMkdirAll(t *testing.T) {
	fs := New()
	dir := filepath.Join(t.TempDir(), "x", "y", "z")

	if err := fs.MkdirAll(dir); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Idempotent.
	if err := fs.MkdirAll(dir); err != nil {
		t.Errorf("second mkdir: %v", err)
	}
}
