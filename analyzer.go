package cipin

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// Normalize applies only the char-filter stage. Exposed so callers can show
// the cleaned text without re-tokenizing.
func (a Analyzer) Normalize(s string) string {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	return s
}

func (a Analyzer) Analyze(s string) TokenStream {
	return a.AnalyzeNormalized(a.Normalize(s))
}

// AnalyzeNormalized tokenizes and filters text that already went through
// Normalize, skipping the char-filter stage.
func (a Analyzer) AnalyzeNormalized(s string) TokenStream {
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}
