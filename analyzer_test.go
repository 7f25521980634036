package cipin

import (
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
)

func TestAnalyzer_Normalize(t *testing.T) {
	analyzer := NewAnalyzer([]CharFilter{NewTagStripFilter(), NewHanFilter()}, nil, nil)

	cases := []struct {
		text     string
		expected string
	}{
		{
			text:     "<html><body><h1>新闻标题</h1><p>Breaking news: 正文 123 内容。</p></body></html>",
			expected: "新闻标题正文内容",
		},
		{
			text:     "<p>english only</p>",
			expected: "",
		},
		{
			text:     "",
			expected: "",
		},
	}
	for _, tt := range cases {
		if got := analyzer.Normalize(tt.text); got != tt.expected {
			t.Errorf("Analyzer.Normalize(%q) = %q, want %q", tt.text, got, tt.expected)
		}
	}
}

// AnalyzeNormalized skips the char-filter stage: the segmenter must see the
// input verbatim, markup and all.
func TestAnalyzer_AnalyzeNormalized(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockSegmenter := NewMockSegmenter(mockCtrl)
	mockSegmenter.EXPECT().Segment("<p>abc</p>苹果").Return([]string{"苹果"})

	analyzer := NewAnalyzer(
		[]CharFilter{NewTagStripFilter(), NewHanFilter()},
		NewSegmentTokenizer(mockSegmenter),
		[]TokenFilter{NewMinLengthFilter(2)},
	)
	got := analyzer.AnalyzeNormalized("<p>abc</p>苹果")
	expected := TokenStream{Tokens: []Token{{Term: "苹果"}}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Diff: (-want +got)\n%s", diff)
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	cases := []struct {
		text      string
		segmented []string
		stopWords []string
		expected  TokenStream
	}{
		{
			// Stopwords and single-character words are both dropped.
			text:      "<p>今天天气很好，天气很好。</p>",
			segmented: []string{"今天", "天气", "很", "好", "天气", "很", "好"},
			stopWords: []string{"今天"},
			expected: TokenStream{
				Tokens: []Token{
					{Term: "天气"},
					{Term: "天气"},
				},
			},
		},
		{
			text:      "<div>abc</div>",
			segmented: []string{},
			stopWords: []string{},
			expected:  TokenStream{Tokens: []Token{}},
		},
	}

	for _, tt := range cases {
		mockCtrl := gomock.NewController(t)
		mockSegmenter := NewMockSegmenter(mockCtrl)
		mockSegmenter.EXPECT().Segment(gomock.Any()).Return(tt.segmented)

		analyzer := NewAnalyzer(
			[]CharFilter{NewTagStripFilter(), NewHanFilter()},
			NewSegmentTokenizer(mockSegmenter),
			[]TokenFilter{NewStopWordFilter(tt.stopWords), NewMinLengthFilter(2)},
		)
		if diff := cmp.Diff(tt.expected, analyzer.Analyze(tt.text)); diff != "" {
			t.Errorf("Diff: (-want +got)\n%s", diff)
		}
		mockCtrl.Finish()
	}
}
