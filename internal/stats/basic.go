package stats

import (
	"fmt"

	"github.com/tmxtools/tmxplore/internal/corpus"
)

// LengthStats summarizes one side's character lengths.
type LengthStats struct {
	Mean float64
	Min  int
	Max  int
}

// BasicSummary holds the headline statistics of a pair collection.
type BasicSummary struct {
	Pairs          int
	SourceChars    LengthStats
	TargetChars    LengthStats
	SourceWordMean float64
	TargetWordMean float64
}

// BasicStats reports pair count, per-side character length statistics and
// mean words per sentence.
func (r *Reporter) BasicStats(pairs corpus.Pairs) BasicSummary {
	fmt.Fprintf(r.w, "=== Basic statistics ===\n")
	if len(pairs) == 0 {
		fmt.Fprintln(r.w, "No pairs loaded.")
		return BasicSummary{}
	}

	n := len(pairs)
	s := BasicSummary{Pairs: n}
	s.SourceChars.Min = pairs[0].SourceChars()
	s.TargetChars.Min = pairs[0].TargetChars()

	var srcCharSum, tgtCharSum, srcWordSum, tgtWordSum int
	for _, p := range pairs {
		sc, tc := p.SourceChars(), p.TargetChars()
		srcCharSum += sc
		tgtCharSum += tc
		srcWordSum += p.SourceWords()
		tgtWordSum += p.TargetWords()
		s.SourceChars.Min = min(s.SourceChars.Min, sc)
		s.SourceChars.Max = max(s.SourceChars.Max, sc)
		s.TargetChars.Min = min(s.TargetChars.Min, tc)
		s.TargetChars.Max = max(s.TargetChars.Max, tc)
	}
	s.SourceChars.Mean = float64(srcCharSum) / float64(n)
	s.TargetChars.Mean = float64(tgtCharSum) / float64(n)
	s.SourceWordMean = float64(srcWordSum) / float64(n)
	s.TargetWordMean = float64(tgtWordSum) / float64(n)

	src, tgt := r.labels()
	fmt.Fprintf(r.w, "Number of sentence pairs: %s\n", r.count(n))
	fmt.Fprintf(r.w, "%s chars: mean=%.1f, min=%d, max=%d\n", src, s.SourceChars.Mean, s.SourceChars.Min, s.SourceChars.Max)
	fmt.Fprintf(r.w, "%s chars: mean=%.1f, min=%d, max=%d\n", tgt, s.TargetChars.Mean, s.TargetChars.Min, s.TargetChars.Max)
	fmt.Fprintf(r.w, "%s words/sent: mean=%.1f\n", src, s.SourceWordMean)
	fmt.Fprintf(r.w, "%s words/sent: mean=%.1f\n", tgt, s.TargetWordMean)
	return s
}
