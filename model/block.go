package model

import "sort"

// BlockType identifies how a block's content is rendered.
type BlockType string

const (
	BlockRule         BlockType = "rule"
	BlockDialogue     BlockType = "dialogue"
	BlockExample      BlockType = "example"
	BlockCentered     BlockType = "centered"
	BlockSeparator    BlockType = "separator"
	BlockMarkupHeader BlockType = "markup-header"
)

// String returns the type tag.
func (bt BlockType) String() string { return string(bt) }

// Known reports whether bt is one of the renderable block types.
func (bt BlockType) Known() bool {
	switch bt {
	case BlockRule, BlockDialogue, BlockExample, BlockCentered, BlockSeparator, BlockMarkupHeader:
		return true
	}
	return false
}

// Parsed reports whether content of this type goes through table
// substitution, segmentation and inline parsing.
func (bt BlockType) Parsed() bool {
	return bt == BlockRule || bt == BlockExample || bt == BlockDialogue
}

// ParseBlockType converts a tag to a BlockType. Unknown tags are kept as-is.
func ParseBlockType(s string) BlockType {
	return BlockType(s)
}

// Block is one authored unit of note text.
type Block struct {
	ID      string    `json:"id" yaml:"id"`
	Type    BlockType `json:"type" yaml:"type"`
	Content string    `json:"content" yaml:"content"`
	Order   int       `json:"order" yaml:"order"`
}

// NewBlock creates a block with the given identity and content.
func NewBlock(id string, bt BlockType, content string, order int) Block {
	return Block{
		ID:      id,
		Type:    bt,
		Content: content,
		Order:   order,
	}
}

// SortBlocks returns a copy of blocks ordered by Order. Ties keep their
// relative position.
func SortBlocks(blocks []Block) []Block {
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// NextOrder returns the order value for a block appended after blocks.
func NextOrder(blocks []Block) int {
	max := 0
	for i, b := range blocks {
		if i == 0 || b.Order > max {
			max = b.Order
		}
	}
	return max + 1
}
