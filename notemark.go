// Package notemark provides a fluent API for rendering note blocks written in
// the notemark plain-text markup to HTML fragments, plain text and Markdown.
//
// Basic usage:
//
//	html, warnings, err := notemark.Open("lesson.json").HTML()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", notemark.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := notemark.Open("lesson.json").
//	    Types(model.BlockRule, model.BlockDialogue).
//	    Markdown()
//
// The lower-level tables, segment, inline and render packages are also
// available.
package notemark

import (
	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/source"
)

// Open reads blocks from a file when a terminal operation runs. The format
// is taken from the extension, then from the content.
//
// Example:
//
//	html, warnings, err := notemark.Open("lesson.json").HTML()
func Open(filename string) *Composer {
	return &Composer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBlocks creates a Composer over blocks held in memory.
//
// Example:
//
//	html, _, _ := notemark.FromBlocks(
//	    model.NewBlock("rule-1", model.BlockRule, "*Past simple", 1),
//	).HTML()
func FromBlocks(blocks ...model.Block) *Composer {
	doc := model.NewDocument()
	doc.Blocks = append(doc.Blocks, blocks...)
	return FromDocument(doc)
}

// FromDocument creates a Composer over a loaded document.
func FromDocument(doc *model.Document) *Composer {
	return &Composer{
		doc:     doc,
		options: defaultOptions(),
	}
}

// FromText creates a Composer over a single block of type bt holding text.
func FromText(text string, bt model.BlockType) *Composer {
	return FromDocument(source.ParseText(text, bt))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := notemark.Must(notemark.Open("lesson.json").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to HTML(), Text() or Markdown()
// and panics if the error is non-nil. It discards warnings.
//
// Example:
//
//	html := notemark.MustText(notemark.Open("lesson.json").HTML())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
