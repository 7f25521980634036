package segmentation

import (
	"github.com/go-ego/gse"
)

// Gse wraps github.com/go-ego/gse so that callers depend on the Segmenter
// interface, not on gse itself.
type Gse struct {
	seg gse.Segmenter
}

// NewGse loads the built-in simplified Chinese dictionary plus any user
// dictionary files (gse format: word, frequency, part of speech per line).
func NewGse(userDicts ...string) (*Gse, error) {
	var seg gse.Segmenter
	if err := seg.LoadDict(); err != nil {
		return nil, err
	}
	for _, dict := range userDicts {
		if err := seg.LoadDict(dict); err != nil {
			return nil, err
		}
	}
	return &Gse{seg: seg}, nil
}

// AddWord registers a single custom dictionary entry, so callers can extend
// the lexicon without shipping a dictionary file.
func (g *Gse) AddWord(word string, frequency float64) error {
	return g.seg.AddToken(word, frequency)
}

func (g *Gse) Segment(text string) []string {
	return g.seg.Cut(text, true)
}
