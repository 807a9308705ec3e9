package tables

import (
	"regexp"
	"strings"
)

// Region delimiters.
const (
	OpenDelim  = '<'
	CloseDelim = '>'
)

// inlineTag matches an HTML tag such as <b> or </i> that may appear inside
// a region without closing it.
var inlineTag = regexp.MustCompile(`^</?[A-Za-z][^<>]*>`)

// tagLen returns the length of the HTML tag s starts with, or 0. A candidate
// holding the column delimiter or a line break is a table region, not a tag.
func tagLen(s string) int {
	m := inlineTag.FindString(s)
	if strings.ContainsAny(m, Marker+"\n") {
		return 0
	}
	return len(m)
}

// Region is the byte range of one table region in a content string.
// Start is the offset of the opening delimiter and End is one past the
// closing delimiter.
type Region struct {
	Start, End int
}

// Body returns the text between the delimiters.
func (r Region) Body(content string) string {
	return content[r.Start+1 : r.End-1]
}

// FindRegions locates every table region in content, in order.
// A region opens at a '<' that does not start an HTML tag or comment and
// closes at the first '>' not consumed by an inline tag. "<go*went>" is a
// region even though it starts with a letter. Unterminated regions are
// ignored.
func FindRegions(content string) []Region {
	var regions []Region
	i := 0
	for i < len(content) {
		if content[i] != OpenDelim || startsTag(content[i:]) {
			i++
			continue
		}

		end := closeOf(content, i+1)
		if end < 0 {
			break
		}
		regions = append(regions, Region{Start: i, End: end + 1})
		i = end + 1
	}
	return regions
}

// Substitute replaces every table region in content with its rendered
// fragment. Fragments are placed on lines of their own so that line-based
// parsing can recognize them; regions that render empty are removed.
func Substitute(content string) string {
	regions := FindRegions(content)
	if len(regions) == 0 {
		return content
	}

	var sb strings.Builder
	last := 0
	for _, r := range regions {
		sb.WriteString(content[last:r.Start])
		last = r.End

		fragment := Generate(r.Body(content))
		if fragment == "" {
			continue
		}
		if !atLineStart(content, r.Start) {
			sb.WriteString("\n")
		}
		sb.WriteString(fragment)
		if !atLineEnd(content, r.End) {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(content[last:])

	return sb.String()
}

// closeOf returns the index of the '>' closing a region whose body starts
// at from, or -1.
func closeOf(content string, from int) int {
	for j := from; j < len(content); j++ {
		switch content[j] {
		case CloseDelim:
			return j
		case OpenDelim:
			if n := tagLen(content[j:]); n > 0 {
				j += n - 1
			}
		}
	}
	return -1
}

func startsTag(s string) bool {
	if len(s) < 2 {
		return false
	}
	return s[1] == '!' || tagLen(s) > 0
}

func atLineStart(content string, i int) bool {
	return strings.TrimSpace(lineBefore(content, i)) == ""
}

func atLineEnd(content string, i int) bool {
	rest := content[i:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSpace(rest) == ""
}

func lineBefore(content string, i int) string {
	head := content[:i]
	if nl := strings.LastIndexByte(head, '\n'); nl >= 0 {
		return head[nl+1:]
	}
	return head
}
