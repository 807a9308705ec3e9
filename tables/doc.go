// Package tables parses the asymmetric table markup of note blocks and
// renders it as HTML.
//
// A table region is wrapped in '<' and '>'. Inside it, '*' delimits columns:
//
//	<*Irregular verbs
//	*Base*Past*Participle*
//	go*went*gone
//	be*was*been
//	* 2
//	(pl.)*were*
//	>
//
// The first line is a caption whenever it starts with '*', so "*Verbs*"
// yields the caption "Verbs*". The first non-blank line after the caption is
// the header row when it both starts and ends with '*'. A region without a
// caption line has no header row either.
//
// # Connector Lines
//
// Any other line starting with '*' is a connector. It makes the next line
// merge into the anchor row (the last full row added) instead of starting a
// row of its own:
//
//   - a bare '*' connects every column
//   - '* 1 3' connects columns 1 and 3 only
//
// In the example above "were" joins "was" in the anchor row, while "(pl.)"
// starts a partial row below "be".
//
// Connected columns append their text to the anchor cell, joined by <br>,
// and grow its rowspan. Unconnected columns that carry text form a partial
// row whose connected slots stay empty (nil) because the anchor spans them.
//
// # Degradation
//
// The parser never fails. An empty body or a body without columns renders
// as the empty string, connectors without an anchor are dropped, ragged rows
// are padded or truncated to the column count and out-of-range column
// numbers are ignored.
package tables
