package cipin

import (
	"fmt"
	"strings"
	"testing"
)

func TestTagStripFilter_Filter(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{
			s:    "<html><body><p>你好世界</p></body></html>",
			want: "你好世界",
		},
		{
			s:    `<a href="https://example.com">链接</a>文本`,
			want: "链接文本",
		},
		{
			s:    "没有标签的文本",
			want: "没有标签的文本",
		},
		{
			s:    "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("s = %v, want = %v", tt.s, tt.want), func(t *testing.T) {
			f := NewTagStripFilter()
			if got := f.Filter(tt.s); got != tt.want {
				t.Errorf("TagStripFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHanFilter_Filter(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{
			s:    "Hello世界123",
			want: "世界",
		},
		{
			s:    "今天，天气 很好！abc\ndef",
			want: "今天天气很好",
		},
		{
			s:    "only ascii 42",
			want: "",
		},
		{
			s:    "汉字",
			want: "汉字",
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("s = %v, want = %v", tt.s, tt.want), func(t *testing.T) {
			f := NewHanFilter()
			if got := f.Filter(tt.s); got != tt.want {
				t.Errorf("HanFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Every rune surviving the filter must sit inside U+4E00..U+9FA5, whatever
// the input.
func TestHanFilter_OnlyHanSurvives(t *testing.T) {
	inputs := []string{
		"<p>中文mixed内容</p>",
		"①②③〇・「」『』，。！？；：",
		"ｱｲｳｴｵかなカナ한국어",
		"emoji 🀄 和 文字",
	}
	f := NewHanFilter()
	for _, in := range inputs {
		for _, r := range f.Filter(in) {
			if r < '一' || r > '龥' {
				t.Errorf("HanFilter let %q through for input %q", r, in)
			}
		}
	}
}

func TestHTMLTextFilter_Filter(t *testing.T) {
	f := NewHTMLTextFilter()
	got := f.Filter("<html><body><p>第一段</p><p>第二段</p></body></html>")
	for _, want := range []string{"第一段", "第二段"} {
		if !strings.Contains(got, want) {
			t.Errorf("HTMLTextFilter.Filter() = %v, want it to contain %v", got, want)
		}
	}
}
