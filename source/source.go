// Package source loads note blocks from editor save files, YAML block lists
// and plain text.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/notemark/format"
	"github.com/tsawler/notemark/internal/logger"
	"github.com/tsawler/notemark/model"
)

var (
	// ErrNotSaveFile is returned for JSON input lacking the block or
	// vocabulary lists of an editor save file.
	ErrNotSaveFile = errors.New("not an editor save file")
	// ErrUnsupportedFormat is returned for input that holds no blocks.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// Options controls how input is turned into blocks.
type Options struct {
	// BlockType is the type of the single block made from plain text.
	// Defaults to rule.
	BlockType model.BlockType
	// Format overrides detection when not format.Unknown.
	Format format.Format
}

// Load reads a block file from disk.
func Load(path string, opts Options) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f := opts.Format
	if f == format.Unknown {
		f = format.Resolve(path, data)
	}
	logger.Debug("Loading block file", "file", path, "format", f)

	doc, err := Decode(data, f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// Read reads a block file from r, detecting its format from content unless
// opts names one.
func Read(r io.Reader, opts Options) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	f := opts.Format
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}
	return Decode(data, f, opts)
}

// Decode converts data in the given format to a document.
func Decode(data []byte, f format.Format, opts Options) (*model.Document, error) {
	switch f {
	case format.JSON:
		return ParseJSON(data)
	case format.YAML:
		return ParseYAML(data)
	case format.Text:
		return ParseText(string(data), opts.BlockType), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// saveFile is the editor's JSON save layout.
type saveFile struct {
	AllBlocks      []model.Block          `json:"allBlocks"`
	VocabularyList []model.VocabularyItem `json:"vocabularyList"`
	BlockCounter   int                    `json:"blockCounter"`
	EditorText     string                 `json:"editorText"`
}

// ParseJSON decodes an editor save file. Both the block list and the
// vocabulary list must be present; the counter and draft text are optional.
func ParseJSON(data []byte) (*model.Document, error) {
	var sf saveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("decoding save file: %w", err)
	}
	if sf.AllBlocks == nil || sf.VocabularyList == nil {
		return nil, ErrNotSaveFile
	}

	doc := model.NewDocument()
	doc.Blocks = append(doc.Blocks, sf.AllBlocks...)
	doc.Vocabulary = append(doc.Vocabulary, sf.VocabularyList...)
	doc.Metadata.BlockCounter = sf.BlockCounter
	doc.Metadata.EditorText = sf.EditorText
	return doc, nil
}

// WriteJSON writes doc in the editor's save layout, indented by two spaces.
func WriteJSON(w io.Writer, doc *model.Document) error {
	sf := saveFile{
		AllBlocks:      doc.Blocks,
		VocabularyList: doc.Vocabulary,
		BlockCounter:   doc.Metadata.BlockCounter,
		EditorText:     doc.Metadata.EditorText,
	}
	if sf.AllBlocks == nil {
		sf.AllBlocks = []model.Block{}
	}
	if sf.VocabularyList == nil {
		sf.VocabularyList = []model.VocabularyItem{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("encoding save file: %w", err)
	}
	return nil
}

// yamlFile is the hand-written block list layout.
type yamlFile struct {
	Title  string `yaml:"title"`
	Blocks []struct {
		ID      string `yaml:"id"`
		Type    string `yaml:"type"`
		Content string `yaml:"content"`
		Order   *int   `yaml:"order"`
	} `yaml:"blocks"`
	Vocabulary []yaml.Node `yaml:"vocabulary"`
}

// ParseYAML decodes a YAML block list. Blocks without an order follow the
// blocks before them; blocks without an id get a generated one. Vocabulary
// entries may be plain strings or {id, word} mappings.
func ParseYAML(data []byte) (*model.Document, error) {
	var yf yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&yf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding block list: %w", err)
	}

	doc := model.NewDocument()
	doc.Metadata.Title = yf.Title

	for _, b := range yf.Blocks {
		bt := model.ParseBlockType(strings.TrimSpace(b.Type))
		if bt == "" {
			bt = model.BlockRule
		}
		id := b.ID
		if id == "" {
			id = NewID(bt.String())
		}
		order := model.NextOrder(doc.Blocks)
		if b.Order != nil {
			order = *b.Order
		}
		doc.Blocks = append(doc.Blocks, model.NewBlock(id, bt, b.Content, order))
	}

	for i := range yf.Vocabulary {
		item, err := vocabularyItem(&yf.Vocabulary[i])
		if err != nil {
			return nil, fmt.Errorf("decoding vocabulary entry %d: %w", i+1, err)
		}
		if item.Word != "" {
			doc.Vocabulary = append(doc.Vocabulary, item)
		}
	}

	doc.Metadata.BlockCounter = len(doc.Blocks) + len(doc.Vocabulary)
	return doc, nil
}

func vocabularyItem(node *yaml.Node) (model.VocabularyItem, error) {
	var item model.VocabularyItem
	if node.Kind == yaml.ScalarNode {
		item.Word = strings.TrimSpace(node.Value)
	} else if err := node.Decode(&item); err != nil {
		return item, err
	}
	if item.ID == "" {
		item.ID = NewID("vocab")
	}
	return item, nil
}

// ParseText turns plain note text into a document holding one block of type
// bt, or rule when bt is empty.
func ParseText(text string, bt model.BlockType) *model.Document {
	if bt == "" {
		bt = model.BlockRule
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	doc := model.NewDocument()
	doc.AddBlock(bt, NewID(bt.String()), text)
	doc.Metadata.BlockCounter = 1
	return doc
}

// NewID returns a block id of the form "<prefix>-<uuid>".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
