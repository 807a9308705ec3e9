// Package render dispatches note blocks to the markup engine and wraps the
// results in type-specific containers.
//
// Rule, example and dialogue blocks go through table substitution,
// segmentation and inline parsing. Centered blocks are laid out directly,
// separator blocks emit a fixed divider and markup-header blocks are passed
// through unchanged.
//
// A [Pass] is one rendering pass over a set of blocks. Dialogue sides
// alternate across the whole pass, so a pass is not safe for concurrent use;
// start a new one per goroutine. [Renderer] itself holds only the shared
// speaker palette cache and may be used concurrently.
package render
