package model

import (
	"strings"
)

// Table is a rowspan matrix parsed from table markup.
type Table struct {
	Caption string
	Headers []string
	Rows    []Row
	cols    int
}

// Row holds one entry per column. A nil entry is covered by a rowspan from
// an anchor row above and is not rendered.
type Row []*Cell

// Cell represents a table cell
type Cell struct {
	Content string
	RowSpan int
}

// NewCell creates a cell spanning a single row.
func NewCell(content string) *Cell {
	return &Cell{Content: content, RowSpan: 1}
}

// NewTable creates an empty table with a fixed column count.
func NewTable(cols int) *Table {
	return &Table{
		Rows: make([]Row, 0),
		cols: cols,
	}
}

// ColCount returns the fixed column count.
func (t *Table) ColCount() int {
	return t.cols
}

// RowCount returns the number of matrix rows, including partial rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasHeader reports whether header labels were given.
func (t *Table) HasHeader() bool {
	return len(t.Headers) > 0
}

// AddRow appends a row and returns its index in the matrix.
func (t *Table) AddRow(row Row) int {
	t.Rows = append(t.Rows, row)
	return len(t.Rows) - 1
}

// AnchorRow builds a full row from cell texts, truncated or padded with
// empty cells to the column count.
func (t *Table) AnchorRow(cells []string) Row {
	row := make(Row, t.cols)
	for j := 0; j < t.cols; j++ {
		content := ""
		if j < len(cells) {
			content = cells[j]
		}
		row[j] = NewCell(content)
	}
	return row
}

// GetCell returns the cell at the given row and column (0-indexed), or nil
// when the slot is out of range or covered by a rowspan.
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// ToMarkdown converts the table to markdown format. Rowspans are flattened:
// covered slots are left blank and merged line breaks become spaces.
func (t *Table) ToMarkdown() string {
	if t.cols == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Caption != "" {
		sb.WriteString("**")
		sb.WriteString(t.Caption)
		sb.WriteString("**\n\n")
	}

	header := t.Headers
	if len(header) == 0 {
		header = make([]string, t.cols)
	}
	writeMarkdownRow(&sb, header, t.cols)

	for j := 0; j < t.cols; j++ {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for _, row := range t.Rows {
		texts := make([]string, t.cols)
		for j, cell := range row {
			if cell != nil && j < t.cols {
				texts[j] = cell.Content
			}
		}
		writeMarkdownRow(&sb, texts, t.cols)
	}

	return sb.String()
}

func writeMarkdownRow(sb *strings.Builder, texts []string, cols int) {
	for j := 0; j < cols; j++ {
		sb.WriteString("| ")
		if j < len(texts) {
			text := strings.ReplaceAll(texts[j], "<br>", " ")
			sb.WriteString(strings.ReplaceAll(text, "|", "\\|"))
		}
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}
