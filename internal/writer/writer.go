// Package writer materializes rendered components under the content
// directory and manages the shared temporary download directory.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"catpub/internal/catalog"
	"catpub/pkg/fsutil"
)

// ErrContentDirMissing is returned when the content directory does not exist.
var ErrContentDirMissing = errors.New("content directory does not exist")

// PageFilename is the name of the content file written per component.
const PageFilename = "index.md"

// Writer writes one directory per component under the content directory.
type Writer struct {
	contentDir string
	tmpDir     string
}

// New creates a writer. The content directory must already exist; the
// publisher never creates it.
func New(contentDir, tmpDir string) (*Writer, error) {
	if !fsutil.DirExists(contentDir) {
		return nil, fmt.Errorf("%w: %s", ErrContentDirMissing, contentDir)
	}

	return &Writer{
		contentDir: contentDir,
		tmpDir:     tmpDir,
	}, nil
}

// ComponentDir returns the output directory for a component title.
func (w *Writer) ComponentDir(title string) string {
	return filepath.Join(w.contentDir, title)
}

// Write replaces the component's output directory, writes the rendered
// page and copies the resolved image alongside it. An existing
// directory is deleted recursively first, never merged into.
func (w *Writer) Write(c *catalog.Component, page string) error {
	dir := w.ComponentDir(c.Title)

	if err := fsutil.ReplaceDir(dir); err != nil {
		return err
	}

	pagePath := filepath.Join(dir, PageFilename)
	if err := os.WriteFile(pagePath, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pagePath, err)
	}

	if c.HasImage() {
		if _, err := fsutil.CopyFile(c.Image, dir); err != nil {
			return fmt.Errorf("failed to copy image for %s: %w", c.Title, err)
		}
	}

	return nil
}

// Cleanup removes the temporary download directory if present. Called
// once after the whole batch.
func (w *Writer) Cleanup() error {
	if !fsutil.DirExists(w.tmpDir) {
		return nil
	}

	if err := os.RemoveAll(w.tmpDir); err != nil {
		return fmt.Errorf("failed to remove temporary directory %s: %w", w.tmpDir, err)
	}

	return nil
}
