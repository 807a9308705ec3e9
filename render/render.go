package render

import (
	"strings"

	"github.com/tsawler/notemark/inline"
	"github.com/tsawler/notemark/internal/logger"
	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/segment"
	"github.com/tsawler/notemark/speaker"
	"github.com/tsawler/notemark/tables"
)

// Container class names per block type.
const (
	RuleClass         = "rule-block"
	ExampleClass      = "example-block"
	DialogueClass     = "dialogue-block"
	CenteredClass     = "centered-block"
	MarkupHeaderClass = "markup-header-block"
)

// SeparatorHTML is the fixed fragment of a separator block.
const SeparatorHTML = `<div class="separator-wrapper"><hr class="compact-separator"></div>`

// Renderer renders blocks to HTML fragments.
type Renderer struct {
	palettes inline.PaletteSource
}

// New creates a Renderer drawing speaker palettes from palettes.
// A nil source derives palettes without caching.
func New(palettes *speaker.Assigner) *Renderer {
	r := &Renderer{}
	if palettes != nil {
		r.palettes = palettes
	}
	return r
}

// NewPass starts a rendering pass.
func (r *Renderer) NewPass() *Pass {
	return &Pass{renderer: r}
}

// Block renders a single block in a pass of its own.
func (r *Renderer) Block(b model.Block) string {
	return r.NewPass().Block(b)
}

// Blocks renders blocks in ascending order within one pass and
// concatenates the fragments.
func (r *Renderer) Blocks(blocks []model.Block) string {
	return strings.Join(r.Fragments(blocks), "")
}

// Fragments renders blocks in ascending order within one pass and returns
// one fragment per block, in render order.
func (r *Renderer) Fragments(blocks []model.Block) []string {
	p := r.NewPass()
	sorted := model.SortBlocks(blocks)
	out := make([]string, len(sorted))
	for i, b := range sorted {
		out[i] = p.Block(b)
	}
	return out
}

// Pass is one rendering pass. It carries the dialogue side counter.
type Pass struct {
	renderer *Renderer
	sides    speaker.Sides
}

// Block renders one block as part of the pass.
func (p *Pass) Block(b model.Block) string {
	var html string
	switch b.Type {
	case model.BlockRule:
		html = wrap(RuleClass, p.content(b.Content, false))
	case model.BlockExample:
		html = wrap(ExampleClass, p.content(b.Content, false))
	case model.BlockDialogue:
		html = wrap(DialogueClass, p.content(b.Content, true))
	case model.BlockCentered:
		html = Centered(b.Content)
	case model.BlockSeparator:
		html = SeparatorHTML
	case model.BlockMarkupHeader:
		html = wrap(MarkupHeaderClass, b.Content)
	default:
		logger.Debug("Skipping block of unknown type", "block", b.ID, "type", b.Type)
		return ""
	}

	logger.BlockRender(b.ID, b.Type.String(), len(html))
	return html
}

// DialogueLines returns how many dialogue lines the pass has placed.
func (p *Pass) DialogueLines() int {
	return p.sides.Emitted()
}

// content runs the markup pipeline over parsed block content.
func (p *Pass) content(text string, dialogue bool) string {
	parser := &inline.Parser{
		Dialogue: dialogue,
		Palettes: p.renderer.palettes,
		Sides:    &p.sides,
	}
	return segment.Render(segment.Split(tables.Substitute(text)), parser.Parse)
}

// Centered lays out a centered block: the first non-empty line in bold,
// the remaining non-empty lines in italics below it.
func Centered(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	var first, rest string
	if len(lines) > 0 {
		first = "<b>" + lines[0] + "</b>"
	}
	if len(lines) > 1 {
		rest = "<i>" + strings.Join(lines[1:], "<br>") + "</i>"
	}

	sep := ""
	if first != "" && rest != "" {
		sep = "<br>"
	}
	return wrap(CenteredClass, first+sep+rest)
}

func wrap(class, inner string) string {
	return `<div class="` + class + `">` + inner + `</div>`
}
