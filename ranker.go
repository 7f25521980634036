package cipin

import (
	"sort"
)

const DefaultTopN = 20

// FreqRecord is one (word, count) pair in a ranked result.
type FreqRecord struct {
	Word   string `json:"word"`
	Pinyin string `json:"pinyin,omitempty"`
	Count  int    `json:"count"`
}

type freqRecords []FreqRecord

func (fr freqRecords) Len() int           { return len(fr) }
func (fr freqRecords) Less(i, j int) bool { return fr[i].Count > fr[j].Count }
func (fr freqRecords) Swap(i, j int)      { fr[i], fr[j] = fr[j], fr[i] }

// Ranker counts token occurrences and ranks them by frequency. It is pure:
// the same token stream always yields the same result.
type Ranker struct {
	topN int
}

func NewRanker(topN int) Ranker {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return Ranker{
		topN: topN,
	}
}

// Rank returns the top-N records ordered by count descending, ties broken
// by first occurrence in the stream, together with the full word→count
// mapping. An empty stream yields an empty ranking, not an error.
func (r Ranker) Rank(tokenStream TokenStream) ([]FreqRecord, map[string]int) {
	counts := make(map[string]int, tokenStream.Size())
	records := make(freqRecords, 0, tokenStream.Size())
	index := make(map[string]int, tokenStream.Size())

	for _, token := range tokenStream.Tokens {
		counts[token.Term]++
		if i, seen := index[token.Term]; seen {
			records[i].Count++
			continue
		}
		index[token.Term] = len(records)
		records = append(records, FreqRecord{
			Word:   token.Term,
			Pinyin: token.Pinyin,
			Count:  1,
		})
	}

	// records is in first-seen order, so a stable sort preserves that
	// order between equal counts.
	sort.Stable(records)

	if len(records) > r.topN {
		records = records[:r.topN]
	}
	return records, counts
}
