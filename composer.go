package notemark

import (
	"fmt"
	"strings"

	"github.com/tsawler/notemark/dictionary"
	"github.com/tsawler/notemark/format"
	"github.com/tsawler/notemark/htmldoc"
	"github.com/tsawler/notemark/internal/logger"
	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/render"
	"github.com/tsawler/notemark/source"
	"github.com/tsawler/notemark/speaker"
)

// palettes is shared by composers that are not given their own assigner.
var palettes = speaker.NewAssigner(speaker.DefaultExpiration)

// Fragment is the rendered HTML of one block.
type Fragment struct {
	ID   string
	Type model.BlockType
	HTML string
}

// Composer provides a fluent interface for rendering note blocks.
// Each configuration method returns a new Composer instance, making it
// safe for concurrent use and allowing method chaining.
type Composer struct {
	// Source
	filename string
	doc      *model.Document

	// Configuration
	options RenderOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Composer with a deep copy of options.
func (c *Composer) clone() *Composer {
	return &Composer{
		filename: c.filename,
		doc:      c.doc,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// document returns the in-memory document or loads it from the file.
func (c *Composer) document() (*model.Document, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.doc != nil {
		return c.doc, nil
	}
	if c.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	return source.Load(c.filename, source.Options{
		BlockType: c.options.blockType,
		Format:    c.options.format,
	})
}

func (c *Composer) renderer() *render.Renderer {
	if c.options.palettes != nil {
		return render.New(c.options.palettes)
	}
	return render.New(palettes)
}

// selected returns the blocks to render in input order, with warnings.
func (c *Composer) selected() (*model.Document, []model.Block, []Warning, error) {
	doc, err := c.document()
	if err != nil {
		return nil, nil, nil, err
	}

	blocks := make([]model.Block, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		if c.options.selects(b.Type) {
			blocks = append(blocks, b)
		}
	}
	return doc, blocks, checkBlocks(blocks), nil
}

// ============================================================================
// Configuration Methods (return new Composer instance)
// ============================================================================

// Types restricts rendering to blocks of the given types.
// Multiple calls are cumulative.
//
// Example:
//
//	html, _, err := notemark.Open("lesson.json").Types(model.BlockDialogue).HTML()
func (c *Composer) Types(types ...model.BlockType) *Composer {
	newC := c.clone()
	newC.options.types = append(newC.options.types, types...)
	return newC
}

// Format forces the input format instead of detecting it.
func (c *Composer) Format(f format.Format) *Composer {
	newC := c.clone()
	newC.options.format = f
	return newC
}

// BlockType sets the type of the block made from plain text input.
//
// Example:
//
//	html, _, err := notemark.Open("chat.txt").BlockType(model.BlockDialogue).HTML()
func (c *Composer) BlockType(bt model.BlockType) *Composer {
	newC := c.clone()
	if bt == "" {
		newC.err = fmt.Errorf("empty block type")
		return newC
	}
	newC.options.blockType = bt
	return newC
}

// WithVocabulary appends the vocabulary block with dictionary links after
// the block fragments. An empty heading keeps the default.
func (c *Composer) WithVocabulary(heading string) *Composer {
	newC := c.clone()
	newC.options.vocabulary = true
	if heading != "" {
		newC.options.heading = heading
	}
	return newC
}

// Palettes sets the speaker palette cache used for dialogue blocks.
func (c *Composer) Palettes(a *speaker.Assigner) *Composer {
	newC := c.clone()
	newC.options.palettes = a
	return newC
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document returns the loaded document, unfiltered.
func (c *Composer) Document() (*model.Document, error) {
	return c.document()
}

// Fragments renders the selected blocks in ascending order within one
// rendering pass and returns one fragment per block.
func (c *Composer) Fragments() ([]Fragment, []Warning, error) {
	_, blocks, warnings, err := c.selected()
	if err != nil {
		return nil, nil, err
	}

	sorted := model.SortBlocks(blocks)
	htmls := c.renderer().Fragments(sorted)

	out := make([]Fragment, len(sorted))
	for i, b := range sorted {
		out[i] = Fragment{ID: b.ID, Type: b.Type, HTML: htmls[i]}
	}
	return out, warnings, nil
}

// HTML renders the selected blocks and concatenates the fragments, followed
// by the vocabulary block when enabled.
//
// Example:
//
//	html, warnings, err := notemark.Open("lesson.json").WithVocabulary("").HTML()
func (c *Composer) HTML() (string, []Warning, error) {
	doc, blocks, warnings, err := c.selected()
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(c.renderer().Blocks(blocks))
	if c.options.vocabulary {
		sb.WriteString(dictionary.VocabularyHTML(c.options.heading, doc.Vocabulary))
	}

	logger.Debug("Rendered document", "blocks", len(blocks), "bytes", sb.Len())
	return sb.String(), warnings, nil
}

// Outline reads the rendered blocks back into structural elements.
func (c *Composer) Outline() ([]htmldoc.Element, []Warning, error) {
	r, _, warnings, err := c.readBack()
	if err != nil {
		return nil, nil, err
	}
	return r.Elements(), warnings, nil
}

// Text renders the selected blocks and returns their plain text.
func (c *Composer) Text() (string, []Warning, error) {
	r, doc, warnings, err := c.readBack()
	if err != nil {
		return "", nil, err
	}

	text := r.Text()
	if words := c.vocabularyWords(doc); len(words) > 0 {
		text = joinNonEmpty(text, c.options.heading+"\n"+strings.Join(words, "\n"))
	}
	return text, warnings, nil
}

// Markdown renders the selected blocks and returns them as Markdown.
func (c *Composer) Markdown() (string, []Warning, error) {
	r, doc, warnings, err := c.readBack()
	if err != nil {
		return "", nil, err
	}

	md := r.Markdown()
	if words := c.vocabularyWords(doc); len(words) > 0 {
		var sb strings.Builder
		sb.WriteString("## " + c.options.heading + "\n")
		for _, w := range words {
			links := dictionary.Links(w)
			parts := make([]string, len(links))
			for i, l := range links {
				parts[i] = "[" + l.Name + "](" + l.URL + ")"
			}
			sb.WriteString("\n- **" + w + "** " + strings.Join(parts, " "))
		}
		md = joinNonEmpty(md, sb.String())
	}
	return md, warnings, nil
}

// readBack renders the selected blocks without the vocabulary block and
// parses the result.
func (c *Composer) readBack() (*htmldoc.Reader, *model.Document, []Warning, error) {
	doc, blocks, warnings, err := c.selected()
	if err != nil {
		return nil, nil, nil, err
	}

	r, err := htmldoc.Parse(c.renderer().Blocks(blocks))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading rendered blocks: %w", err)
	}
	return r, doc, warnings, nil
}

func (c *Composer) vocabularyWords(doc *model.Document) []string {
	if !c.options.vocabulary {
		return nil
	}
	return dictionary.Dedupe(doc.Words())
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n\n" + b
}
