package cipin

import (
	"time"

	"github.com/pkg/errors"

	"github.com/yxzhao7/cipin/segmentation"
)

// Result is the one data shape handed to any presentation consumer: the
// ranked top-N records, the full count mapping for weighted renderings such
// as word clouds, and the normalized text for display.
type Result struct {
	Text   string         `json:"text"`
	Top    []FreqRecord   `json:"top"`
	Counts map[string]int `json:"counts"`
}

// Pipeline runs one fetch → normalize → segment → rank pass per call. It
// holds no mutable state between runs; the segmenter dictionary is built
// once and read-only afterwards.
type Pipeline struct {
	fetcher     *Fetcher
	tokenizer   Tokenizer
	ranker      Ranker
	markupStrip CharFilter
}

type PipelineOption func(*Pipeline)

// WithTimeout bounds the fetch. The zero value falls back to
// DefaultFetchTimeout; an unbounded fetch is not an option.
func WithTimeout(timeout time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if timeout <= 0 {
			timeout = DefaultFetchTimeout
		}
		p.fetcher.client.Timeout = timeout
	}
}

// WithUserAgent overrides the default browser User-Agent header.
func WithUserAgent(userAgent string) PipelineOption {
	return func(p *Pipeline) {
		if userAgent != "" {
			p.fetcher.userAgent = userAgent
		}
	}
}

func WithTopN(n int) PipelineOption {
	return func(p *Pipeline) {
		p.ranker = NewRanker(n)
	}
}

// WithHTMLTextFilter swaps the heuristic tag stripper for the html2text
// based one.
func WithHTMLTextFilter() PipelineOption {
	return func(p *Pipeline) {
		p.markupStrip = NewHTMLTextFilter()
	}
}

func NewPipeline(segmenter segmentation.Segmenter, options ...PipelineOption) *Pipeline {
	p := &Pipeline{
		fetcher:     NewFetcher(DefaultFetchTimeout),
		tokenizer:   NewSegmentTokenizer(segmenter),
		ranker:      NewRanker(DefaultTopN),
		markupStrip: NewTagStripFilter(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Run executes one analysis for the given URL and stoplist. A nil stoplist
// means none was supplied and fails before any network activity; an empty
// one is valid. Zero surviving tokens is a success with an empty ranking.
func (p *Pipeline) Run(rawurl string, stopWords []string) (*Result, error) {
	if stopWords == nil {
		return nil, NewInvalidInputError("no stopword list supplied")
	}
	if err := ValidateURL(rawurl); err != nil {
		return nil, err
	}

	raw, err := p.fetcher.Fetch(rawurl)
	if err != nil {
		return nil, err
	}

	analyzer := NewAnalyzer(
		[]CharFilter{p.markupStrip, NewHanFilter()},
		p.tokenizer,
		[]TokenFilter{
			NewStopWordFilter(stopWords),
			NewMinLengthFilter(2),
			NewPinyinReadingFilter(),
		},
	)

	text := analyzer.Normalize(raw)
	tokenStream := analyzer.AnalyzeNormalized(text)
	top, counts := p.ranker.Rank(tokenStream)
	if top == nil {
		top = []FreqRecord{}
	}

	return &Result{
		Text:   text,
		Top:    top,
		Counts: counts,
	}, nil
}

// RunWithUserDict builds a pipeline around the default gse segmenter,
// extended with the given user dictionary files, and runs one analysis.
func RunWithUserDict(rawurl string, stopWords []string, userDicts []string, options ...PipelineOption) (*Result, error) {
	seg, err := segmentation.NewGse(userDicts...)
	if err != nil {
		return nil, errors.Wrap(err, "load segmentation dictionary")
	}
	return NewPipeline(seg, options...).Run(rawurl, stopWords)
}
