package model

// SegmentKind distinguishes the two segment variants.
type SegmentKind int

const (
	SegmentSimple SegmentKind = iota
	SegmentColumns
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentSimple:
		return "Simple"
	case SegmentColumns:
		return "Columns"
	default:
		return "Unknown"
	}
}

// Simple is a plain text chunk.
type Simple struct {
	Text string
}

// Segment is a content unit produced by splitting block text. It holds
// either one Simple chunk or a list of Simple columns; because columns are
// Simple values, a segment never nests more than one level.
type Segment struct {
	kind    SegmentKind
	text    string
	columns []Simple
}

// SimpleSegment wraps text as a Simple segment.
func SimpleSegment(text string) Segment {
	return Segment{kind: SegmentSimple, text: text}
}

// ColumnsSegment groups Simple chunks for side-by-side rendering.
func ColumnsSegment(columns ...Simple) Segment {
	cols := make([]Simple, len(columns))
	copy(cols, columns)
	return Segment{kind: SegmentColumns, columns: cols}
}

// Kind returns the variant tag.
func (s Segment) Kind() SegmentKind { return s.kind }

// Text returns the text of a Simple segment, or "" for Columns.
func (s Segment) Text() string { return s.text }

// Columns returns the sub-segments of a Columns segment, or nil for Simple.
func (s Segment) Columns() []Simple { return s.columns }
