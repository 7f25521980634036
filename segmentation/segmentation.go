package segmentation

// Segmenter splits unspaced Chinese text into word tokens, preserving the
// original order. Implementations are expected to be safe for repeated use
// once constructed.
type Segmenter interface {
	Segment(string) []string
}
