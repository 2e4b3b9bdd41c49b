// Package render produces the front-matter page body for a component.
package render

import (
	"strings"

	"catpub/internal/catalog"
)

// Delimiter is the front-matter marker line.
const Delimiter = "---"

// FrontMatter formats the component fields in the fixed key order the
// site theme expects. Values are inserted verbatim, no escaping. The
// summaryImage line is present only when an image was supplied, and
// carries the bare filename.
func FrontMatter(c *catalog.Component) string {
	var sb strings.Builder

	sb.WriteString("title: " + c.Title + "\n")
	sb.WriteString("date: " + c.Date + "\n")
	sb.WriteString("draft: true\n")
	sb.WriteString("hideLastModified: true\n")
	sb.WriteString("showInMenu: false\n")

	if c.HasImage() {
		sb.WriteString("summaryImage: " + c.ImageFilename() + "\n")
	}

	sb.WriteString("summary: " + c.Summary + "\n")
	sb.WriteString("link: " + c.Link + "\n")
	sb.WriteString("tags: " + TagList(c.Tags) + "\n")

	return sb.String()
}

// Page wraps the front matter between delimiter lines. The closing
// delimiter has no trailing newline, matching the published pages.
func Page(c *catalog.Component) string {
	return Delimiter + "\n" + FrontMatter(c) + Delimiter
}

// TagList renders tags as a bracketed, comma-joined list of their
// symbolic names, e.g. [Util,Gromacs].
func TagList(tags []catalog.Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name())
	}

	return "[" + strings.Join(names, ",") + "]"
}
