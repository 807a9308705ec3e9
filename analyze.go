package notemark

import (
	"sort"

	"github.com/tsawler/notemark/htmldoc"
	"github.com/tsawler/notemark/model"
)

// Summary describes the structure of a rendered document.
type Summary struct {
	Blocks     map[model.BlockType]int
	Headers    []string
	Tables     int
	Examples   int
	Speakers   []string
	Dialogue   int
	Vocabulary int
}

// BlockTypes returns the block types present, sorted by name.
func (s *Summary) BlockTypes() []model.BlockType {
	types := make([]model.BlockType, 0, len(s.Blocks))
	for bt := range s.Blocks {
		types = append(types, bt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Analyze renders the selected blocks and summarizes what they contain.
//
// Example:
//
//	sum, _, err := notemark.Open("lesson.json").Analyze()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d tables, speakers %v\n", sum.Tables, sum.Speakers)
func (c *Composer) Analyze() (*Summary, []Warning, error) {
	r, doc, warnings, err := c.readBack()
	if err != nil {
		return nil, nil, err
	}

	sum := &Summary{
		Blocks:     make(map[model.BlockType]int),
		Speakers:   r.Speakers(),
		Vocabulary: len(doc.Vocabulary),
	}
	for _, b := range doc.Blocks {
		if c.options.selects(b.Type) {
			sum.Blocks[b.Type]++
		}
	}

	for _, el := range r.Elements() {
		switch el.Type {
		case htmldoc.ElementHeader:
			sum.Headers = append(sum.Headers, el.Text)
		case htmldoc.ElementTable:
			sum.Tables++
		case htmldoc.ElementExamples:
			sum.Examples += len(el.Items)
		case htmldoc.ElementDialogue:
			sum.Dialogue++
		}
	}

	return sum, warnings, nil
}
