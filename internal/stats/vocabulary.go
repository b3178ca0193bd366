package stats

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/mattn/go-runewidth"

	"github.com/tmxtools/tmxplore/internal/corpus"
)

// wordPattern tokenizes text into runs of Unicode letters, digits and
// underscores. \w would only cover ASCII here.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// WordCount pairs a token with its frequency.
type WordCount struct {
	Word  string
	Count int
}

// VocabularySummary holds per-side token totals and top frequency lists.
type VocabularySummary struct {
	SourceTokens int
	TargetTokens int
	SourceUnique int
	TargetUnique int
	SourceTop    []WordCount
	TargetTop    []WordCount
}

// countTokens tallies the lower-cased tokens of text into freq, which
// preserves first-encounter order, and returns the number of tokens seen.
func countTokens(freq *orderedmap.OrderedMap[string, int], text string) int {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
	for _, tok := range tokens {
		freq.Set(tok, freq.GetOrDefault(tok, 0)+1)
	}
	return len(tokens)
}

// topWords ranks tokens by descending frequency. The sort is stable over
// insertion order, so equal counts keep their first-encountered order.
func topWords(freq *orderedmap.OrderedMap[string, int], n int) []WordCount {
	ranked := make([]WordCount, 0, freq.Len())
	for el := freq.Front(); el != nil; el = el.Next() {
		ranked = append(ranked, WordCount{Word: el.Key, Count: el.Value})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	n = min(max(n, 0), len(ranked))
	return ranked[:n:n]
}

// VocabularyTrends reports token totals and the topN most frequent words
// per side, ranked side by side.
func (r *Reporter) VocabularyTrends(pairs corpus.Pairs, topN int) VocabularySummary {
	fmt.Fprintf(r.w, "\n=== Top words ===\n")
	if len(pairs) == 0 {
		fmt.Fprintln(r.w, "No pairs to analyze.")
		return VocabularySummary{}
	}

	srcFreq := orderedmap.NewOrderedMap[string, int]()
	tgtFreq := orderedmap.NewOrderedMap[string, int]()
	var s VocabularySummary
	for _, p := range pairs {
		s.SourceTokens += countTokens(srcFreq, p.Source)
		s.TargetTokens += countTokens(tgtFreq, p.Target)
	}
	s.SourceUnique = srcFreq.Len()
	s.TargetUnique = tgtFreq.Len()
	s.SourceTop = topWords(srcFreq, topN)
	s.TargetTop = topWords(tgtFreq, topN)

	src, tgt := r.labels()
	fmt.Fprintf(r.w, "%s: %s tokens, %s unique\n", src, r.count(s.SourceTokens), r.count(s.SourceUnique))
	fmt.Fprintf(r.w, "%s: %s tokens, %s unique\n", tgt, r.count(s.TargetTokens), r.count(s.TargetUnique))

	rows := max(len(s.SourceTop), len(s.TargetTop))
	if rows == 0 {
		return s
	}
	fmt.Fprintln(r.w)

	left := make([]string, len(s.SourceTop))
	colWidth := runewidth.StringWidth(r.sourceLabel)
	for i, wc := range s.SourceTop {
		left[i] = fmt.Sprintf("%s (%s)", wc.Word, r.count(wc.Count))
		colWidth = max(colWidth, runewidth.StringWidth(left[i]))
	}
	fmt.Fprintf(r.w, "  rank  %s  %s\n", runewidth.FillRight(r.sourceLabel, colWidth), r.targetLabel)
	for i := 0; i < rows; i++ {
		var l, t string
		if i < len(left) {
			l = left[i]
		}
		if i < len(s.TargetTop) {
			t = fmt.Sprintf("%s (%s)", s.TargetTop[i].Word, r.count(s.TargetTop[i].Count))
		}
		fmt.Fprintf(r.w, "  %4d  %s  %s\n", i+1, runewidth.FillRight(l, colWidth), t)
	}
	return s
}
