// Package htmldoc reads rendered note fragments back into a flat outline of
// elements, for inspection and plain-text or Markdown export.
package htmldoc

import "strings"

// Element is one structural element found in a rendered fragment.
type Element struct {
	Type ElementType
	// Block is the container type the element was found in ("rule",
	// "dialogue", ...), or "" outside any block.
	Block string
	Text  string
	// Items holds example group entries and secondary centered lines.
	Items []string
	// Speaker and Side are set for dialogue lines.
	Speaker string
	Side    string
	// Colors of a dialogue line, as #rrggbb.
	Background string
	Border     string
	Label      string
	Table      *ParsedTable
}

// ElementType represents the type of a rendered element.
type ElementType int

const (
	ElementParagraph ElementType = iota
	ElementHeader
	ElementExamples
	ElementDialogue
	ElementTable
	ElementDivider
	ElementSeparator
	ElementCentered
	ElementMarkup
)

func (et ElementType) String() string {
	switch et {
	case ElementParagraph:
		return "paragraph"
	case ElementHeader:
		return "header"
	case ElementExamples:
		return "examples"
	case ElementDialogue:
		return "dialogue"
	case ElementTable:
		return "table"
	case ElementDivider:
		return "divider"
	case ElementSeparator:
		return "separator"
	case ElementCentered:
		return "centered"
	case ElementMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// ParsedTable represents a table read back from a fragment.
type ParsedTable struct {
	Caption string
	Headers []string
	Rows    [][]TableCell
}

// TableCell represents a rendered table cell. Covered slots are absent, so
// rows may hold fewer cells than the table has columns.
type TableCell struct {
	Text    string
	RowSpan int
}

// ToMarkdown converts the table to markdown format.
func (t *ParsedTable) ToMarkdown() string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	var result strings.Builder
	if t.Caption != "" {
		result.WriteString("**" + escapeMarkdown(t.Caption) + "**\n\n")
	}

	result.WriteString("|")
	for j := 0; j < cols; j++ {
		h := ""
		if j < len(t.Headers) {
			h = t.Headers[j]
		}
		result.WriteString(" " + escapeMarkdown(h) + " |")
	}
	result.WriteString("\n|")
	for j := 0; j < cols; j++ {
		result.WriteString(" --- |")
	}
	result.WriteString("\n")

	for _, row := range t.Rows {
		result.WriteString("|")
		for j := 0; j < cols; j++ {
			text := ""
			if j < len(row) {
				text = row[j].Text
			}
			result.WriteString(" " + escapeMarkdown(text) + " |")
		}
		result.WriteString("\n")
	}

	return result.String()
}

// escapeMarkdown escapes special markdown characters in text.
func escapeMarkdown(text string) string {
	var result strings.Builder
	for _, r := range text {
		switch r {
		case '|':
			result.WriteString("\\|")
		case '\n':
			result.WriteString(" ")
		case '\r':
			// Skip
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
