package tables

import (
	"strconv"
	"strings"

	"github.com/tsawler/notemark/model"
)

// Class names of the rendered table fragment.
const (
	WrapperClass = "content-table-wrapper"
	TableClass   = "content-table"
	CaptionClass = "content-table-caption"
)

// FragmentPrefix is how every rendered table fragment begins.
const FragmentPrefix = `<div class="` + WrapperClass + `">`

// Render renders a table as an HTML fragment. Covered slots are omitted and
// a rowspan attribute is written only for cells spanning more than one row.
func Render(t *model.Table) string {
	if t == nil || t.ColCount() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(FragmentPrefix)
	sb.WriteString(`<table class="` + TableClass + `">`)

	if t.Caption != "" {
		sb.WriteString(`<caption class="` + CaptionClass + `">`)
		sb.WriteString(t.Caption)
		sb.WriteString("</caption>")
	}

	if t.HasHeader() {
		sb.WriteString("<thead><tr>")
		for _, h := range t.Headers {
			sb.WriteString("<th>")
			sb.WriteString(h)
			sb.WriteString("</th>")
		}
		sb.WriteString("</tr></thead>")
	}

	sb.WriteString("<tbody>")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			if cell == nil {
				continue
			}
			sb.WriteString("<td")
			if cell.RowSpan > 1 {
				sb.WriteString(` rowspan="`)
				sb.WriteString(strconv.Itoa(cell.RowSpan))
				sb.WriteString(`"`)
			}
			sb.WriteString(">")
			sb.WriteString(cell.Content)
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table></div>")

	return sb.String()
}

// Generate parses a region body and renders it in one step.
func Generate(body string) string {
	return Render(Parse(body))
}

// IsFragment reports whether a line holds a rendered table fragment.
func IsFragment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), FragmentPrefix)
}
