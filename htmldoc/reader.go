package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/notemark/inline"
	"github.com/tsawler/notemark/render"
	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/segment"
)

// blockClasses maps container classes to block type names.
var blockClasses = map[string]string{
	render.RuleClass:         "rule",
	render.ExampleClass:      "example",
	render.DialogueClass:     "dialogue",
	render.CenteredClass:     "centered",
	render.MarkupHeaderClass: "markup-header",
}

const separatorClass = "separator-wrapper"

// Reader provides access to the structure of a rendered fragment.
type Reader struct {
	doc      *html.Node
	elements []Element
}

// Open reads a rendered fragment from a file.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses a rendered fragment from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		elements: make([]Element, 0),
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	reader.traverseNode(body, "")

	return reader, nil
}

// Parse parses a rendered fragment held in memory.
func Parse(fragment string) (*Reader, error) {
	return OpenReader(strings.NewReader(fragment))
}

// Elements returns the outline in document order.
func (r *Reader) Elements() []Element {
	return r.elements
}

// Tables returns every table in the fragment.
func (r *Reader) Tables() []*ParsedTable {
	var out []*ParsedTable
	for _, el := range r.elements {
		if el.Type == ElementTable {
			out = append(out, el.Table)
		}
	}
	return out
}

// Speakers returns the distinct dialogue speakers in order of appearance.
func (r *Reader) Speakers() []string {
	seen := make(map[string]bool)
	var out []string
	for _, el := range r.elements {
		if el.Type == ElementDialogue && !seen[el.Speaker] {
			seen[el.Speaker] = true
			out = append(out, el.Speaker)
		}
	}
	return out
}

func (r *Reader) add(el Element) {
	r.elements = append(r.elements, el)
}

// traverseNode recursively processes DOM nodes. block is the type of the
// innermost enclosing block container.
func (r *Reader) traverseNode(n *html.Node, block string) {
	if n.Type != html.ElementNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.traverseNode(c, block)
		}
		return
	}

	for cls, name := range blockClasses {
		if hasClass(n, cls) {
			block = name
			break
		}
	}

	switch {
	case hasClass(n, render.CenteredClass):
		r.parseCentered(n, block)
		return
	case hasClass(n, render.MarkupHeaderClass):
		if text := getTextContent(n); text != "" {
			r.add(Element{Type: ElementMarkup, Block: block, Text: text})
		}
		return
	case hasClass(n, separatorClass):
		r.add(Element{Type: ElementSeparator, Block: "separator"})
		return
	case hasClass(n, segment.SeparatorClass):
		r.add(Element{Type: ElementDivider, Block: block})
		return
	case hasClass(n, segment.DividerClass):
		return
	case hasClass(n, inline.HeaderClass):
		r.add(Element{Type: ElementHeader, Block: block, Text: getTextContent(n)})
		return
	case hasClass(n, inline.ExampleGroupClass):
		r.parseExamples(n, block)
		return
	case hasClass(n, inline.DialogueLineClass):
		r.parseDialogue(n, block)
		return
	case n.Data == "table":
		r.add(Element{Type: ElementTable, Block: block, Table: r.parseTable(n)})
		return
	case n.Data == "p":
		if text := getTextContent(n); text != "" {
			r.add(Element{Type: ElementParagraph, Block: block, Text: text})
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.traverseNode(c, block)
	}
}

func (r *Reader) parseCentered(n *html.Node, block string) {
	el := Element{Type: ElementCentered, Block: block}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "b":
			el.Text = getTextContent(c)
		case "i":
			for _, line := range strings.Split(getTextContent(c), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					el.Items = append(el.Items, line)
				}
			}
		}
	}
	if el.Text != "" || len(el.Items) > 0 {
		r.add(el)
	}
}

func (r *Reader) parseExamples(n *html.Node, block string) {
	el := Element{Type: ElementExamples, Block: block}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "div" {
			el.Items = append(el.Items, getTextContent(c))
		}
	}
	r.add(el)
}

func (r *Reader) parseDialogue(n *html.Node, block string) {
	el := Element{Type: ElementDialogue, Block: block, Side: model.SideLeft.String()}
	if hasClass(n, inline.SideClass(model.SideRight)) {
		el.Side = model.SideRight.String()
	}

	if bubble := findClass(n, inline.BubbleClass); bubble != nil {
		styles := parseStyle(getAttr(bubble, "style"))
		el.Background = styles["background-color"]
		el.Border = styles["border-color"]
	}
	if sp := findClass(n, inline.SpeakerClass); sp != nil {
		el.Speaker = getTextContent(sp)
		el.Label = parseStyle(getAttr(sp, "style"))["color"]
	}
	if rep := findClass(n, inline.ReplicaClass); rep != nil {
		el.Text = getTextContent(rep)
	}

	r.add(el)
}

// parseTable extracts a table from an HTML table element.
func (r *Reader) parseTable(tableNode *html.Node) *ParsedTable {
	table := &ParsedTable{
		Rows: make([][]TableCell, 0),
	}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "caption":
			table.Caption = getTextContent(c)
		case "thead":
			for _, row := range r.parseTableRows(c) {
				for _, cell := range row {
					table.Headers = append(table.Headers, cell.Text)
				}
			}
		case "tbody":
			table.Rows = append(table.Rows, r.parseTableRows(c)...)
		case "tr":
			table.Rows = append(table.Rows, r.parseTableRow(c))
		}
	}

	return table
}

// parseTableRows parses rows within thead or tbody.
func (r *Reader) parseTableRows(section *html.Node) [][]TableCell {
	var rows [][]TableCell
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			rows = append(rows, r.parseTableRow(c))
		}
	}
	return rows
}

// parseTableRow parses a single table row.
func (r *Reader) parseTableRow(tr *html.Node) []TableCell {
	row := make([]TableCell, 0)

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cell := TableCell{
				Text:    getTextContent(c),
				RowSpan: 1,
			}
			if v, err := strconv.Atoi(getAttr(c, "rowspan")); err == nil && v > 1 {
				cell.RowSpan = v
			}
			row = append(row, cell)
		}
	}

	return row
}

// Text returns the plain text of the fragment, one element per paragraph.
func (r *Reader) Text() string {
	var parts []string
	for _, el := range r.elements {
		switch el.Type {
		case ElementParagraph, ElementHeader, ElementMarkup:
			parts = append(parts, el.Text)
		case ElementExamples:
			parts = append(parts, strings.Join(el.Items, "\n"))
		case ElementDialogue:
			parts = append(parts, el.Speaker+": "+el.Text)
		case ElementCentered:
			parts = append(parts, strings.Join(append([]string{el.Text}, el.Items...), "\n"))
		case ElementTable:
			parts = append(parts, tableText(el.Table))
		case ElementSeparator:
			parts = append(parts, "---")
		}
	}
	return strings.Join(parts, "\n\n")
}

func tableText(t *ParsedTable) string {
	var lines []string
	if t.Caption != "" {
		lines = append(lines, t.Caption)
	}
	if len(t.Headers) > 0 {
		lines = append(lines, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		texts := make([]string, len(row))
		for i, cell := range row {
			texts[i] = strings.ReplaceAll(cell.Text, "\n", " ")
		}
		lines = append(lines, strings.Join(texts, "\t"))
	}
	return strings.Join(lines, "\n")
}

// Markdown returns the fragment as Markdown.
func (r *Reader) Markdown() string {
	var parts []string
	for _, el := range r.elements {
		switch el.Type {
		case ElementParagraph:
			parts = append(parts, strings.ReplaceAll(el.Text, "\n", "  \n"))
		case ElementHeader:
			parts = append(parts, "### "+el.Text)
		case ElementMarkup:
			parts = append(parts, "## "+el.Text)
		case ElementExamples:
			items := make([]string, len(el.Items))
			for i, item := range el.Items {
				items[i] = "- " + item
			}
			parts = append(parts, strings.Join(items, "\n"))
		case ElementDialogue:
			parts = append(parts, "**"+el.Speaker+":** "+el.Text)
		case ElementCentered:
			lines := []string{}
			if el.Text != "" {
				lines = append(lines, "**"+el.Text+"**")
			}
			for _, item := range el.Items {
				lines = append(lines, "*"+item+"*")
			}
			parts = append(parts, strings.Join(lines, "  \n"))
		case ElementTable:
			parts = append(parts, strings.TrimRight(el.Table.ToMarkdown(), "\n"))
		case ElementSeparator:
			parts = append(parts, "---")
		}
	}
	return strings.Join(parts, "\n\n")
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// findClass finds the first descendant carrying the given class.
func findClass(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, class) {
			return c
		}
		if result := findClass(c, class); result != nil {
			return result
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// parseStyle splits an inline style attribute into properties.
func parseStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return props
}

// getTextContent extracts all text content from a node and its descendants.
// Line breaks become newlines.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		result.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}
