package tables

import (
	"strings"

	"github.com/tsawler/notemark/model"
)

// Marker is the column delimiter. Prefixed to a line it also marks the
// caption (first line of a region), the header row (first line after the
// caption, wrapped on both ends) and a connector line (anywhere else).
const Marker = "*"

// Parse parses the body of a table region into a rowspan matrix.
// It returns nil when the body is empty or no column count can be inferred.
func Parse(body string) *model.Table {
	content := strings.TrimSpace(body)

	caption := ""
	if first, rest, found := strings.Cut(content, "\n"); isCaptionLine(first) {
		caption = strings.TrimSpace(strings.TrimPrefix(first, Marker))
		content = ""
		if found {
			content = strings.TrimSpace(rest)
		}
	}
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")

	var headers []string
	dataLines := lines
	if idx := firstNonBlank(lines); idx >= 0 && isHeaderLine(lines[idx]) {
		headers = splitHeader(lines[idx])
		dataLines = lines[idx+1:]
	}

	cols := len(headers)
	if cols == 0 {
		for _, line := range dataLines {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && !strings.HasPrefix(trimmed, Marker) {
				cols = len(strings.Split(line, Marker))
				break
			}
		}
	}
	if cols == 0 {
		return nil
	}

	table := model.NewTable(cols)
	table.Caption = caption
	table.Headers = headers

	w := walker{table: table, anchor: -1}
	for i, line := range dataLines {
		prev := ""
		if i > 0 {
			prev = strings.TrimSpace(dataLines[i-1])
		}
		w.step(line, prev)
	}

	return table
}

// walker carries the merge state across data lines. The anchor is an index
// into table.Rows, not a reference, so later merges always land on the
// matrix row itself.
type walker struct {
	table  *model.Table
	anchor int
}

func (w *walker) step(line, prev string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, Marker) {
		return
	}

	cells := splitCells(line)

	if strings.HasPrefix(prev, Marker) && w.anchor >= 0 {
		w.merge(cells, connectedColumns(prev))
		return
	}

	w.anchor = w.table.AddRow(w.table.AnchorRow(cells))
}

// merge folds the cells of a line that follows a connector into the anchor
// row. Connected columns extend the anchor cell; the others form a partial
// row that is added only when it carries content.
func (w *walker) merge(cells []string, connected map[int]bool) {
	cols := w.table.ColCount()
	anchor := w.table.Rows[w.anchor]

	isConnected := func(j int) bool {
		return len(connected) == 0 || connected[j+1]
	}

	partial := make(model.Row, cols)
	hasContent := false

	for j := 0; j < cols; j++ {
		text := ""
		if j < len(cells) {
			text = cells[j]
		}

		if isConnected(j) {
			if text != "" {
				cell := anchor[j]
				if cell.Content != "" {
					cell.Content += "<br>"
				}
				cell.Content += text
				cell.RowSpan++
			}
			continue
		}

		partial[j] = model.NewCell(text)
		if text != "" {
			hasContent = true
		}
	}

	if hasContent {
		w.table.AddRow(partial)
	}
}

// connectedColumns reads the 1-based column digits from a connector line.
// Each digit counts on its own, so "12" names columns 1 and 2. An empty set
// means every column is connected.
func connectedColumns(connector string) map[int]bool {
	spec := strings.TrimSpace(strings.TrimPrefix(connector, Marker))
	cols := make(map[int]bool)
	for _, r := range spec {
		if r >= '0' && r <= '9' {
			cols[int(r-'0')] = true
		}
	}
	return cols
}

func firstNonBlank(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return i
		}
	}
	return -1
}

// isCaptionLine reports whether the first line of a region is a caption.
// Any marker-prefixed first line is, even one wrapped like a header row.
func isCaptionLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Marker)
}

func isHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, Marker) && strings.HasSuffix(trimmed, Marker)
}

func splitHeader(line string) []string {
	trimmed := strings.TrimSpace(line)
	inner := ""
	if len(trimmed) >= 2*len(Marker) {
		inner = trimmed[len(Marker) : len(trimmed)-len(Marker)]
	}
	return splitCells(inner)
}

func splitCells(line string) []string {
	parts := strings.Split(line, Marker)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
