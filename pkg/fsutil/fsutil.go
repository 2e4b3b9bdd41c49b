// Package fsutil provides common filesystem helpers.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNameExhausted is returned when no unique filename could be generated.
var ErrNameExhausted = errors.New("exhausted attempts to generate a unique filename")

// maxNameAttempts bounds the collision retry loop in UniqueFilename.
const maxNameAttempts = 16

// UniqueFilename returns a path under dir for a new file named by a
// random UUID plus suffix, guaranteed not to exist at the time of the
// check. Collisions trigger regeneration, bounded by maxNameAttempts.
func UniqueFilename(dir, suffix string) (string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		name := uuid.NewString() + suffix
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
	}

	return "", ErrNameExhausted
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// CopyFile copies src into dstDir keeping its base name and returns the
// destination path.
func CopyFile(src, dstDir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	dst := filepath.Join(dstDir, filepath.Base(src))

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return "", fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close destination file: %w", err)
	}

	return dst, nil
}

// ReplaceDir removes path recursively if it exists and recreates it empty.
func ReplaceDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}
