// Package catalog defines the component catalogue data model and loader.
package catalog

import "path/filepath"

// DateFormat is the fixed textual date format used throughout the catalogue.
const DateFormat = "2006-01-02"

// Component is a validated catalogue entry. Instances are built by the
// validator and not mutated afterwards.
type Component struct {
	Title     string
	Link      string
	Summary   string
	Developer string
	Date      string
	Image     string
	Tags      []Tag
}

// HasImage reports whether an image was supplied for the component.
func (c *Component) HasImage() bool {
	return c.Image != ""
}

// ImageFilename returns the bare filename of the resolved image,
// with no directory components.
func (c *Component) ImageFilename() string {
	if c.Image == "" {
		return ""
	}

	return filepath.Base(c.Image)
}
