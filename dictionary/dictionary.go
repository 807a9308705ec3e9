// Package dictionary builds dictionary lookup links for vocabulary words and
// the vocabulary block that follows the rendered note blocks.
package dictionary

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tsawler/notemark/model"
)

// Source is one online dictionary.
type Source struct {
	// Name is the button label.
	Name string
	// Class is the CSS modifier of the button.
	Class string
	url   func(word string) string
}

// URL returns the lookup address of word in this dictionary.
func (s Source) URL(word string) string {
	return s.url(word)
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lower-cases word, replaces whitespace runs with '-' and escapes the
// result for use as a path segment.
func Slug(word string) string {
	slug := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(word)), "-")
	return url.PathEscape(slug)
}

// Sources lists the dictionaries in button order.
var Sources = []Source{
	{"Collins", "collins", func(w string) string {
		return "https://www.collinsdictionary.com/dictionary/english/" + Slug(w)
	}},
	{"Cambridge", "cambridge", func(w string) string {
		return "https://dictionary.cambridge.org/dictionary/english/" + Slug(w)
	}},
	{"Oxford", "oxford", func(w string) string {
		return "https://www.oxfordlearnersdictionaries.com/definition/english/" + Slug(w)
	}},
	{"Google", "google", func(w string) string {
		return "https://translate.google.com/?sl=en&tl=ru&text=" + url.QueryEscape(strings.TrimSpace(w))
	}},
	{"Longman", "longman", func(w string) string {
		return "https://www.ldoceonline.com/dictionary/" + Slug(w)
	}},
	{"Macmillan", "macmillan", func(w string) string {
		return "https://www.macmillandictionary.com/dictionary/british/" + Slug(w)
	}},
}

// Link is a resolved dictionary link for one word.
type Link struct {
	Name  string
	Class string
	URL   string
}

// Links returns the links for word in button order.
func Links(word string) []Link {
	links := make([]Link, 0, len(Sources))
	for _, s := range Sources {
		links = append(links, Link{Name: s.Name, Class: s.Class, URL: s.URL(word)})
	}
	return links
}

// VocabularyHTML renders the vocabulary block with a row of dictionary links
// per word. It returns "" for an empty list.
func VocabularyHTML(heading string, items []model.VocabularyItem) string {
	if len(items) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="vocabulary-master-block"><h2>`)
	sb.WriteString(heading)
	sb.WriteString(`</h2>`)
	for _, item := range items {
		sb.WriteString(`<div class="vocab-item"><div class="vocab-item-word"><span class="main-word">`)
		sb.WriteString(item.Word)
		sb.WriteString(`</span><div class="dict-buttons">`)
		for _, l := range Links(item.Word) {
			sb.WriteString(`<a href="`)
			sb.WriteString(l.URL)
			sb.WriteString(`" target="_blank" class="dict-btn `)
			sb.WriteString(l.Class)
			sb.WriteString(`">`)
			sb.WriteString(l.Name)
			sb.WriteString(`</a>`)
		}
		sb.WriteString(`</div></div></div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// Dedupe drops words that repeat an earlier word case-insensitively, and
// blank words. Order is preserved.
func Dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		key := strings.ToLower(w)
		if w == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}
