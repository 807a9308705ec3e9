// Package segment splits block text into ordered chunks along separator
// lines and, within a chunk, into side-by-side columns along column-break
// lines.
package segment

import (
	"strings"

	"github.com/tsawler/notemark/model"
)

// Line-exact markers.
const (
	SeparatorMarker   = "_"
	ColumnBreakMarker = "/"
)

// Class names used when laying out segments.
const (
	SeparatorClass = "internal-block-separator"
	ColumnsClass   = "responsive-columns"
	ColumnClass    = "responsive-column"
	DividerClass   = "column-divider"
)

// Split cuts text into chunks at every separator line. A chunk containing a
// column-break line becomes a Columns segment of Simple parts.
func Split(text string) []model.Segment {
	chunks := splitOn(text, SeparatorMarker)
	segments := make([]model.Segment, 0, len(chunks))
	for _, chunk := range chunks {
		segments = append(segments, columns(chunk))
	}
	return segments
}

// columns splits one chunk at column-break lines. Parts are Simple values
// and are not split again.
func columns(chunk string) model.Segment {
	parts := splitOn(chunk, ColumnBreakMarker)
	if len(parts) == 1 {
		return model.SimpleSegment(chunk)
	}
	cols := make([]model.Simple, len(parts))
	for i, p := range parts {
		cols[i] = model.Simple{Text: p}
	}
	return model.ColumnsSegment(cols...)
}

func splitOn(text, marker string) []string {
	lines := strings.Split(text, "\n")
	var parts []string
	start := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			parts = append(parts, strings.Join(lines[start:i], "\n"))
			start = i + 1
		}
	}
	return append(parts, strings.Join(lines[start:], "\n"))
}

// Render lays segments out as HTML, rendering each Simple text with fn.
// Chunks are separated by divider elements; columns are wrapped in a
// responsive group separated by a pipe glyph.
func Render(segments []model.Segment, fn func(text string) string) string {
	var sb strings.Builder
	for i, seg := range segments {
		if i > 0 {
			sb.WriteString(`<div class="` + SeparatorClass + `"></div>`)
		}
		switch seg.Kind() {
		case model.SegmentColumns:
			sb.WriteString(`<div class="` + ColumnsClass + `">`)
			for j, col := range seg.Columns() {
				if j > 0 {
					sb.WriteString(`<div class="` + DividerClass + `">|</div>`)
				}
				sb.WriteString(`<div class="` + ColumnClass + `">`)
				sb.WriteString(fn(col.Text))
				sb.WriteString("</div>")
			}
			sb.WriteString("</div>")
		default:
			sb.WriteString(fn(seg.Text()))
		}
	}
	return sb.String()
}
