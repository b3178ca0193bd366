package stats

import (
	"fmt"
	"sort"

	"github.com/tmxtools/tmxplore/internal/corpus"
)

// minExtremeSourceChars keeps very short source texts out of the outlier
// list, where tiny denominators make ratios meaningless.
const minExtremeSourceChars = 20

// extremePreviewRunes caps the source text preview in the outlier list.
const extremePreviewRunes = 60

// RatioExtreme is one entry in the list of highest target/source ratios.
type RatioExtreme struct {
	Ratio       float64
	SourceChars int
	TargetChars int
	Preview     string
}

// RatioSummary holds mean target/source length ratios. CharCount and
// WordCount record how many pairs contributed to each series; pairs with
// an empty source side are skipped.
type RatioSummary struct {
	CharMean  float64
	WordMean  float64
	CharCount int
	WordCount int
	Extremes  []RatioExtreme
}

// LengthRatios reports mean target/source length ratios by character and by
// word, then lists the topK pairs with the highest character ratio among
// pairs whose source side has at least minExtremeSourceChars characters.
// Equal ratios keep collection order.
func (r *Reporter) LengthRatios(pairs corpus.Pairs, topK int) RatioSummary {
	fmt.Fprintf(r.w, "\n=== Length ratios (%s/%s) ===\n", r.targetLabel, r.sourceLabel)
	if len(pairs) == 0 {
		fmt.Fprintln(r.w, "No pairs to analyze.")
		return RatioSummary{}
	}
	if topK < 0 {
		topK = 0
	}

	var s RatioSummary
	var charSum, wordSum float64
	for _, p := range pairs {
		if sc := p.SourceChars(); sc > 0 {
			charSum += float64(p.TargetChars()) / float64(sc)
			s.CharCount++
		}
		if sw := p.SourceWords(); sw > 0 {
			wordSum += float64(p.TargetWords()) / float64(sw)
			s.WordCount++
		}
	}
	if s.CharCount > 0 {
		s.CharMean = charSum / float64(s.CharCount)
	}
	if s.WordCount > 0 {
		s.WordMean = wordSum / float64(s.WordCount)
	}

	fmt.Fprintf(r.w, "By character: mean=%.3f\n", s.CharMean)
	fmt.Fprintf(r.w, "By word:      mean=%.3f\n", s.WordMean)

	type candidate struct {
		pair  corpus.Pair
		ratio float64
	}
	var candidates []candidate
	for _, p := range pairs {
		sc := p.SourceChars()
		if sc < minExtremeSourceChars {
			continue
		}
		candidates = append(candidates, candidate{pair: p, ratio: float64(p.TargetChars()) / float64(sc)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
	})

	fmt.Fprintf(r.w, "\nTop %d pairs with highest %s/%s char ratio (%s length >= %d):\n",
		topK, r.targetLabel, r.sourceLabel, r.sourceLabel, minExtremeSourceChars)
	for _, c := range candidates[:min(topK, len(candidates))] {
		e := RatioExtreme{
			Ratio:       c.ratio,
			SourceChars: c.pair.SourceChars(),
			TargetChars: c.pair.TargetChars(),
			Preview:     truncateRunes(c.pair.Source, extremePreviewRunes),
		}
		s.Extremes = append(s.Extremes, e)
		fmt.Fprintf(r.w, "  %.2f  %s[%d] %s[%d]  %s: %s...\n",
			e.Ratio, r.sourceLabel, e.SourceChars, r.targetLabel, e.TargetChars, r.sourceLabel, e.Preview)
	}
	return s
}
