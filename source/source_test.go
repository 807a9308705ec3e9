package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/notemark/format"
	"github.com/tsawler/notemark/model"
)

const saveJSON = `{
  "allBlocks": [
    {"id": "rule-2", "type": "rule", "content": "*Verbs", "order": 2},
    {"id": "dialogue-1", "type": "dialogue", "content": "A: hi", "order": 1}
  ],
  "vocabularyList": [{"id": "vocab-3", "word": "take off"}],
  "blockCounter": 3,
  "editorText": "draft"
}`

func TestParseJSON(t *testing.T) {
	doc, err := ParseJSON([]byte(saveJSON))
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, model.BlockRule, doc.Blocks[0].Type)
	assert.Equal(t, 2, doc.Blocks[0].Order)
	assert.Equal(t, "dialogue-1", doc.Ordered()[0].ID)
	assert.Equal(t, []string{"take off"}, doc.Words())
	assert.Equal(t, 3, doc.Metadata.BlockCounter)
	assert.Equal(t, "draft", doc.Metadata.EditorText)
}

func TestParseJSONRequiresBothLists(t *testing.T) {
	_, err := ParseJSON([]byte(`{"allBlocks": []}`))
	assert.ErrorIs(t, err, ErrNotSaveFile)

	_, err = ParseJSON([]byte(`{"vocabularyList": []}`))
	assert.ErrorIs(t, err, ErrNotSaveFile)

	doc, err := ParseJSON([]byte(`{"allBlocks": [], "vocabularyList": []}`))
	require.NoError(t, err)
	assert.Zero(t, doc.BlockCount())
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"allBlocks": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding save file")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	doc, err := ParseJSON([]byte(saveJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))
	assert.Contains(t, buf.String(), `"allBlocks": [`)
	assert.Contains(t, buf.String(), `"content": "*Verbs"`)

	again, err := ParseJSON(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestWriteJSONEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &model.Document{}))

	_, err := ParseJSON(buf.Bytes())
	assert.NoError(t, err)
}

func TestParseYAML(t *testing.T) {
	data := `title: Lesson 3
blocks:
  - type: rule
    content: |
      *Header
      line
  - id: sep
    type: separator
  - type: dialogue
    order: 10
    content: "A: hi"
vocabulary:
  - go
  - id: v-1
    word: went
`
	doc, err := ParseYAML([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "Lesson 3", doc.Metadata.Title)
	require.Len(t, doc.Blocks, 3)

	assert.True(t, strings.HasPrefix(doc.Blocks[0].ID, "rule-"))
	assert.Equal(t, 1, doc.Blocks[0].Order)
	assert.Equal(t, "*Header\nline\n", doc.Blocks[0].Content)

	assert.Equal(t, "sep", doc.Blocks[1].ID)
	assert.Equal(t, model.BlockSeparator, doc.Blocks[1].Type)
	assert.Equal(t, 2, doc.Blocks[1].Order)

	assert.Equal(t, 10, doc.Blocks[2].Order)

	require.Len(t, doc.Vocabulary, 2)
	assert.True(t, strings.HasPrefix(doc.Vocabulary[0].ID, "vocab-"))
	assert.Equal(t, "go", doc.Vocabulary[0].Word)
	assert.Equal(t, model.VocabularyItem{ID: "v-1", Word: "went"}, doc.Vocabulary[1])
}

func TestParseYAMLEmpty(t *testing.T) {
	doc, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Zero(t, doc.BlockCount())
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML([]byte("blocks: [unclosed"))
	assert.Error(t, err)
}

func TestParseText(t *testing.T) {
	doc := ParseText("Alice: hi\r\nBob: yo", model.BlockDialogue)

	require.Len(t, doc.Blocks, 1)
	b := doc.Blocks[0]
	assert.Equal(t, model.BlockDialogue, b.Type)
	assert.Equal(t, "Alice: hi\nBob: yo", b.Content)
	assert.Equal(t, 1, b.Order)
	assert.True(t, strings.HasPrefix(b.ID, "dialogue-"))

	assert.Equal(t, model.BlockRule, ParseText("x", "").Blocks[0].Type)
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID("rule"), NewID("rule"))
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode([]byte("<div></div>"), format.HTML, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader(saveJSON), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, doc.BlockCount())

	doc, err = Read(strings.NewReader("plain"), Options{BlockType: model.BlockExample})
	require.NoError(t, err)
	assert.Equal(t, model.BlockExample, doc.Blocks[0].Type)

	doc, err = Read(strings.NewReader("{not json"), Options{Format: format.Text})
	require.NoError(t, err)
	assert.Equal(t, "{not json", doc.Blocks[0].Content)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(saveJSON), 0o644))

	doc, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, doc.BlockCount())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"x": 1}`), 0o644))
	_, err = Load(bad, Options{})
	assert.ErrorIs(t, err, ErrNotSaveFile)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
