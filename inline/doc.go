// Package inline classifies the lines of one text segment into block
// elements: paragraphs, headers, example groups, passed-through table
// fragments and, in dialogue mode, speaker-colored dialogue lines.
//
// Line markers:
//
//	** example line     grouped with adjacent example lines
//	* header line       standalone header
//	(blank)             ends the current paragraph or example group
//
// Everything else accumulates into a paragraph. Outside dialogue mode a
// paragraph's lines are joined with <br>; in dialogue mode each line is
// classified on its own, and lines of the form "Speaker: replica" become
// dialogue lines placed alternately left and right.
package inline
