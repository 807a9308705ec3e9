// Package format provides input format detection for notemark block files.
package format

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates an editor save file.
	JSON
	// YAML indicates a YAML block list.
	YAML
	// Text indicates plain note text forming a single block.
	Text
	// HTML indicates a rendered fragment.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".txt", ".note", ".md":
		return Text
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromMagic inspects leading content. Anything that is not recognisably
// JSON, YAML or HTML is treated as note text, so the result is never Unknown
// for non-empty input.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(data) == 0 {
		return Unknown
	}

	switch {
	case data[0] == '{' || data[0] == '[':
		return JSON
	case detectHTMLMagic(data):
		return HTML
	case detectYAMLMagic(data):
		return YAML
	}
	return Text
}

// detectHTMLMagic checks if the data starts with a tag. A '<' followed by
// anything else opens a table region in note text.
func detectHTMLMagic(data []byte) bool {
	if len(data) < 2 || data[0] != '<' {
		return false
	}
	c := data[1]
	return c == '!' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// detectYAMLMagic checks for a document marker or one of the top level keys
// of a block list.
func detectYAMLMagic(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return false
	}
	first := strings.TrimSpace(sc.Text())
	if first == "---" {
		return true
	}
	for _, key := range []string{"title:", "blocks:", "vocabulary:"} {
		if strings.HasPrefix(first, key) {
			return true
		}
	}
	return false
}

// DetectFromReader reads up to 512 bytes of r and inspects them.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// Resolve prefers the extension and falls back to content inspection.
func Resolve(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	return DetectFromMagic(data)
}
