// Package speaker derives presentation colors for dialogue speakers.
//
// A speaker name is normalized (Unicode NFC, trimmed, lower-cased) and hashed
// with SHA-1. The first three digest bytes form the base color, from which
// three presentation colors are mixed:
//
//   - background - base mixed toward white at 0.85
//   - border - base mixed toward white at 0.65
//   - label - base mixed toward black at 0.6
//
// The same name always yields the same [model.Palette]. An [Assigner] memoizes
// palettes and is safe for concurrent use.
//
// Line placement is independent of the speaker: [Sides] alternates left and
// right in emission order for the duration of one rendering pass.
package speaker
