package notemark

import (
	"github.com/tsawler/notemark/format"
	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/speaker"
)

// DefaultVocabularyHeading titles the vocabulary block.
const DefaultVocabularyHeading = "📖 Словарь"

// RenderOptions holds configuration for rendering.
type RenderOptions struct {
	// Block type selection; nil means every block
	types []model.BlockType

	// Input handling
	format    format.Format
	blockType model.BlockType

	// Vocabulary block
	vocabulary bool
	heading    string

	palettes *speaker.Assigner
}

// defaultOptions returns the default render options.
func defaultOptions() RenderOptions {
	return RenderOptions{
		types:     nil,
		format:    format.Unknown,
		blockType: model.BlockRule,
		heading:   DefaultVocabularyHeading,
	}
}

// clone creates a deep copy of RenderOptions.
func (o RenderOptions) clone() RenderOptions {
	newOpts := o

	// Deep copy types slice
	if o.types != nil {
		newOpts.types = make([]model.BlockType, len(o.types))
		copy(newOpts.types, o.types)
	}

	return newOpts
}

// selects reports whether blocks of type bt are rendered.
func (o RenderOptions) selects(bt model.BlockType) bool {
	if len(o.types) == 0 {
		return true
	}
	for _, t := range o.types {
		if t == bt {
			return true
		}
	}
	return false
}
