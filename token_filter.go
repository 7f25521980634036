package cipin

import (
	"strings"
	"unicode/utf8"

	"github.com/mozillazg/go-pinyin"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type StopWordFilter struct {
	stopWords map[string]struct{}
}

// NewStopWordFilter builds the membership set once, so filtering stays O(1)
// per token no matter how large the stoplist is.
func NewStopWordFilter(stopWords []string) StopWordFilter {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[w] = struct{}{}
	}
	return StopWordFilter{
		stopWords: set,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// MinLengthFilter drops tokens shorter than minRunes characters. With
// minRunes=2 it discards all single-character words, which in Chinese are
// mostly function words or segmentation noise.
type MinLengthFilter struct {
	minRunes int
}

func NewMinLengthFilter(minRunes int) MinLengthFilter {
	return MinLengthFilter{
		minRunes: minRunes,
	}
}

func (f MinLengthFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if utf8.RuneCountInString(token.Term) >= f.minRunes {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// PinyinReadingFilter annotates each token with its pinyin reading. The
// term itself is never modified.
type PinyinReadingFilter struct {
	args pinyin.Args
}

func NewPinyinReadingFilter() PinyinReadingFilter {
	return PinyinReadingFilter{
		args: pinyin.NewArgs(),
	}
}

func (f PinyinReadingFilter) Filter(tokenStream TokenStream) TokenStream {
	for i, token := range tokenStream.Tokens {
		tokenStream.Tokens[i].Pinyin = strings.Join(pinyin.LazyPinyin(token.Term, f.args), " ")
	}
	return tokenStream
}
