// Package report renders run summaries as aligned text tables.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one processed component in the summary table.
type Row struct {
	Title  string
	Tags   string
	Image  string
	Status string
}

var header = []string{"Component", "Tags", "Image", "Status"}

// Table renders rows as a pipe-delimited table with columns padded to
// the widest cell, using display width so wide runes line up.
func Table(rows []Row) string {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, header)

	for _, row := range rows {
		image := row.Image
		if image == "" {
			image = "-"
		}

		cells = append(cells, []string{row.Title, row.Tags, image, row.Status})
	}

	widths := make([]int, len(header))

	for _, row := range cells {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Separator needs at least the conventional three dashes
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow(&sb, cells[0], widths)
	writeSeparator(&sb, widths)

	for _, row := range cells[1:] {
		writeRow(&sb, row, widths)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	sb.WriteString("|")

	for i, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(cell)

		if padding := widths[i] - runewidth.StringWidth(cell); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

func writeSeparator(sb *strings.Builder, widths []int) {
	sb.WriteString("|")

	for _, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}
