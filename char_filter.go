package cipin

import (
	"regexp"
	"strings"

	"jaytaylor.com/html2text"
)

type CharFilter interface {
	Filter(string) string
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// TagStripFilter removes every angle-bracket delimited run from the input.
// It is a heuristic stripper, not a parser: an attribute value containing
// ">" splits the tag and leaves the remainder behind. The HanFilter that
// follows it in the pipeline removes such leftovers anyway.
type TagStripFilter struct{}

func NewTagStripFilter() TagStripFilter {
	return TagStripFilter{}
}

func (f TagStripFilter) Filter(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// HTMLTextFilter extracts text content with a real HTML parser. Drop-in
// alternative to TagStripFilter for pages with markup the regexp mishandles.
type HTMLTextFilter struct{}

func NewHTMLTextFilter() HTMLTextFilter {
	return HTMLTextFilter{}
}

func (f HTMLTextFilter) Filter(s string) string {
	text, err := html2text.FromString(s, html2text.Options{TextOnly: true})
	if err != nil {
		// Unparseable markup falls back to the raw input; the HanFilter
		// still removes everything that is not Chinese text.
		return s
	}
	return text
}

const (
	hanRangeLo = '一'
	hanRangeHi = '龥'
)

// HanFilter keeps only CJK Unified Ideographs (U+4E00..U+9FA5). Latin
// letters, digits, whitespace and punctuation are deleted outright, not
// replaced with separators; recovering word boundaries is the tokenizer's
// job.
type HanFilter struct{}

func NewHanFilter() HanFilter {
	return HanFilter{}
}

func (f HanFilter) Filter(s string) string {
	return strings.Map(func(r rune) rune {
		if r < hanRangeLo || r > hanRangeHi {
			return -1
		}
		return r
	}, s)
}
