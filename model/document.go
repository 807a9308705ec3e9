package model

// Document is the set of blocks and vocabulary entries of one note file.
type Document struct {
	Metadata   Metadata
	Blocks     []Block
	Vocabulary []VocabularyItem
}

// Metadata contains document-level information
type Metadata struct {
	Title string
	// BlockCounter is the last id sequence number handed out by the editor.
	BlockCounter int
	// EditorText is the unassigned draft text saved alongside the blocks.
	EditorText string
}

// VocabularyItem is one entry of the vocabulary word list.
type VocabularyItem struct {
	ID   string `json:"id" yaml:"id"`
	Word string `json:"word" yaml:"word"`
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Blocks:     make([]Block, 0),
		Vocabulary: make([]VocabularyItem, 0),
	}
}

// AddBlock appends a block after every existing block in render order.
func (d *Document) AddBlock(bt BlockType, id, content string) Block {
	b := NewBlock(id, bt, content, NextOrder(d.Blocks))
	d.Blocks = append(d.Blocks, b)
	return b
}

// GetBlock returns the block with the given id, or nil.
func (d *Document) GetBlock(id string) *Block {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			return &d.Blocks[i]
		}
	}
	return nil
}

// BlockCount returns the total number of blocks
func (d *Document) BlockCount() int {
	return len(d.Blocks)
}

// Ordered returns the blocks in render order.
func (d *Document) Ordered() []Block {
	return SortBlocks(d.Blocks)
}

// Words returns the vocabulary words in list order.
func (d *Document) Words() []string {
	words := make([]string, 0, len(d.Vocabulary))
	for _, item := range d.Vocabulary {
		words = append(words, item.Word)
	}
	return words
}
