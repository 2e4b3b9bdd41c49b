package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUniqueFilename(t *testing.T) {
	dir := t.TempDir()

	first, err := UniqueFilename(dir, ".png")
	if err != nil {
		t.Fatalf("UniqueFilename failed: %v", err)
	}

	if filepath.Dir(first) != dir {
		t.Errorf("Expected path under %s, got %s", dir, first)
	}

	if !strings.HasSuffix(first, ".png") {
		t.Errorf("Expected .png suffix, got %s", first)
	}

	if _, err := os.Stat(first); !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected generated path to not exist yet")
	}

	second, err := UniqueFilename(dir, ".png")
	if err != nil {
		t.Fatalf("UniqueFilename failed: %v", err)
	}

	if first == second {
		t.Error("Expected distinct names from successive calls")
	}
}

func TestUniqueFilename_NoSuffix(t *testing.T) {
	path, err := UniqueFilename(t.TempDir(), "")
	if err != nil {
		t.Fatalf("UniqueFilename failed: %v", err)
	}

	if strings.Contains(filepath.Base(path), ".") {
		t.Errorf("Expected bare UUID name, got %s", filepath.Base(path))
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(path) {
		t.Error("Expected FileExists true for regular file")
	}

	if FileExists(dir) {
		t.Error("Expected FileExists false for directory")
	}

	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("Expected FileExists false for missing path")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Error("Expected DirExists true for directory")
	}

	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if DirExists(path) {
		t.Error("Expected DirExists false for regular file")
	}
}

func TestCopyFile(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	src := filepath.Join(srcDir, "pic.png")
	if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	dst, err := CopyFile(src, dstDir)
	if err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	if dst != filepath.Join(dstDir, "pic.png") {
		t.Errorf("Unexpected destination path: %s", dst)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read copy: %v", err)
	}

	if string(content) != "payload" {
		t.Errorf("Copy content mismatch: %q", content)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	_, err := CopyFile(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	if err == nil {
		t.Fatal("Expected error for missing source, got nil")
	}
}

func TestReplaceDir(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "out")

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	stale := filepath.Join(dir, "stale.txt")
	if err := os.WriteFile(stale, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write stale file: %v", err)
	}

	if err := ReplaceDir(dir); err != nil {
		t.Fatalf("ReplaceDir failed: %v", err)
	}

	if _, err := os.Stat(stale); !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected stale file gone after replace")
	}

	if !DirExists(dir) {
		t.Error("Expected directory recreated")
	}
}

func TestReplaceDir_Fresh(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-existed")

	if err := ReplaceDir(dir); err != nil {
		t.Fatalf("ReplaceDir failed: %v", err)
	}

	if !DirExists(dir) {
		t.Error("Expected directory created")
	}
}
