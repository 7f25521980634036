package cipin

import (
	"github.com/yxzhao7/cipin/segmentation"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// SegmentTokenizer delegates word splitting to a segmentation engine and
// keeps the tokens in their original order.
type SegmentTokenizer struct {
	segmenter segmentation.Segmenter
}

func NewSegmentTokenizer(segmenter segmentation.Segmenter) SegmentTokenizer {
	return SegmentTokenizer{
		segmenter: segmenter,
	}
}

func (t SegmentTokenizer) Tokenize(s string) TokenStream {
	words := t.segmenter.Segment(s)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = NewToken(w)
	}
	return NewTokenStream(tokens)
}
