// Package model provides the intermediate representation for note blocks and
// the structures the markup engine derives from them.
//
// # Blocks
//
// A [Block] is one authored unit of note text. Its [BlockType] decides how the
// renderer treats the content:
//
//   - [BlockRule], [BlockExample], [BlockDialogue] - parsed markup
//   - [BlockCentered] - lead line plus secondary lines
//   - [BlockSeparator] - fixed divider, content ignored
//   - [BlockMarkupHeader] - pre-formed markup, emitted unchanged
//
// Blocks render in ascending Order. [SortBlocks] is stable, so blocks sharing
// an Order keep their relative position.
//
// # Tables
//
// The [Table] type is the rowspan matrix produced by the table markup parser.
// A [Row] holds one *[Cell] per column; a nil entry marks a slot that is
// covered by a rowspan from an anchor row above it.
//
// # Segments
//
// A [Segment] is either a simple text chunk or a group of columns built from
// simple chunks. Columns never nest.
//
// # Dialogue
//
// A [DialogueLine] pairs a speaker with a replica, the [Side] it is drawn on
// and the [Palette] derived from the speaker name.
package model
