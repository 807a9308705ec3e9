package inline

import (
	"regexp"
	"strings"

	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/speaker"
	"github.com/tsawler/notemark/tables"
)

// Line markers.
const (
	ExampleMarker  = "**"
	HeaderMarker   = "*"
	SpeakerDivider = ":"
)

// Class names of emitted elements.
const (
	ExampleGroupClass = "internal-example-group"
	HeaderClass       = "internal-block-header"
)

// PaletteSource supplies speaker palettes.
type PaletteSource interface {
	Palette(name string) model.Palette
}

// PaletteFunc adapts a function to PaletteSource.
type PaletteFunc func(name string) model.Palette

// Palette calls f(name).
func (f PaletteFunc) Palette(name string) model.Palette { return f(name) }

// Parser turns segment text into HTML. A Parser holds no state between
// Parse calls apart from the Sides counter it is given.
type Parser struct {
	// Dialogue enables speaker line classification.
	Dialogue bool
	// Palettes colors dialogue lines. Nil derives palettes directly.
	Palettes PaletteSource
	// Sides places dialogue lines. Nil starts a fresh counter per Parse.
	Sides *speaker.Sides
}

// Parse renders the lines of one simple segment.
func (p *Parser) Parse(text string) string {
	sides := p.Sides
	if sides == nil {
		sides = &speaker.Sides{}
	}
	palettes := p.Palettes
	if palettes == nil {
		palettes = PaletteFunc(speaker.PaletteFor)
	}

	st := &state{dialogue: p.Dialogue, palettes: palettes, sides: sides}
	for _, line := range strings.Split(text, "\n") {
		st.line(line)
	}
	st.flushParagraph()
	st.flushExamples()

	return st.out.String()
}

// state holds the two accumulators of one Parse call.
type state struct {
	dialogue  bool
	palettes  PaletteSource
	sides     *speaker.Sides
	paragraph []string
	examples  []string
	out       strings.Builder
}

func (st *state) line(line string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case tables.IsFragment(trimmed):
		st.flushParagraph()
		st.flushExamples()
		st.out.WriteString(line)

	case strings.HasPrefix(trimmed, ExampleMarker):
		st.flushParagraph()
		st.examples = append(st.examples, strings.TrimSpace(trimmed[len(ExampleMarker):]))

	case strings.HasPrefix(trimmed, HeaderMarker):
		st.flushParagraph()
		st.flushExamples()
		st.out.WriteString(`<div class="` + HeaderClass + `">`)
		st.out.WriteString(strings.TrimSpace(trimmed[len(HeaderMarker):]))
		st.out.WriteString("</div>")

	case trimmed == "":
		st.flushParagraph()
		st.flushExamples()

	default:
		st.flushExamples()
		st.paragraph = append(st.paragraph, line)
	}
}

func (st *state) flushExamples() {
	if len(st.examples) == 0 {
		return
	}
	st.out.WriteString(`<div class="` + ExampleGroupClass + `">`)
	for _, ex := range st.examples {
		st.out.WriteString("<div>")
		st.out.WriteString(ex)
		st.out.WriteString("</div>")
	}
	st.out.WriteString("</div>")
	st.examples = st.examples[:0]
}

func (st *state) flushParagraph() {
	if len(st.paragraph) == 0 {
		return
	}
	defer func() { st.paragraph = st.paragraph[:0] }()

	if !st.dialogue {
		st.out.WriteString("<p>")
		st.out.WriteString(strings.Join(st.paragraph, "<br>"))
		st.out.WriteString("</p>")
		return
	}

	for _, line := range st.paragraph {
		name, replica, ok := SplitDialogue(line)
		if !ok {
			st.out.WriteString("<p>")
			st.out.WriteString(line)
			st.out.WriteString("</p>")
			continue
		}
		st.out.WriteString(RenderDialogueLine(model.DialogueLine{
			Speaker: name,
			Replica: replica,
			Side:    st.sides.Next(),
			Palette: st.palettes.Palette(name),
		}))
	}
}

// markupTag matches an inline HTML tag such as <span style="color:red">.
var markupTag = regexp.MustCompile(`^</?[A-Za-z][^<>]*>`)

// SplitDialogue splits "Speaker: replica" at the first colon outside inline
// markup tags. Lines starting with the header marker and lines with an empty
// speaker part are not dialogue.
func SplitDialogue(line string) (name, replica string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, HeaderMarker) {
		return "", "", false
	}
	i := dividerIndex(trimmed)
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(trimmed[:i])
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(trimmed[i+len(SpeakerDivider):]), true
}

func dividerIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '<' {
			if m := markupTag.FindString(s[i:]); m != "" {
				i += len(m) - 1
			}
			continue
		}
		if strings.HasPrefix(s[i:], SpeakerDivider) {
			return i
		}
	}
	return -1
}
