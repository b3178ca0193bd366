package stats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmxtools/tmxplore/internal/corpus"
)

// sampleTextRunes caps how much of each side a sample shows.
const sampleTextRunes = 200

// SampledPair is one displayed pair with its collection index. Texts are
// in display form, truncated with an ellipsis when long.
type SampledPair struct {
	Index  int
	Source string
	Target string
}

// SampleSummary lists the displayed sample pairs. Stride is the index step
// used by SamplePairs, zero when indices were given explicitly.
type SampleSummary struct {
	Stride  int
	Samples []SampledPair
}

// clipSample truncates s to sampleTextRunes runes, marking the cut.
func clipSample(s string) string {
	if utf8.RuneCountInString(s) <= sampleTextRunes {
		return s
	}
	return truncateRunes(s, sampleTextRunes) + "..."
}

// SamplePairs reports k pairs at evenly spaced indices: multiples of
// max(1, n/(k+1)), so samples lean toward the front on small collections.
func (r *Reporter) SamplePairs(pairs corpus.Pairs, k int) SampleSummary {
	if k < 0 {
		k = 0
	}
	stride := max(1, len(pairs)/(k+1))
	indices := make([]int, 0, k)
	for i := 0; i < k; i++ {
		indices = append(indices, i*stride)
	}
	s := r.SampleAt(pairs, indices)
	if len(pairs) > 0 {
		s.Stride = stride
	}
	return s
}

// SampleAt reports the pairs at the given collection indices, stopping at
// the first index past the end. Negative indices are skipped.
func (r *Reporter) SampleAt(pairs corpus.Pairs, indices []int) SampleSummary {
	fmt.Fprintf(r.w, "\n=== Sample pairs ===\n")
	if len(pairs) == 0 {
		fmt.Fprintln(r.w, "No pairs to analyze.")
		return SampleSummary{}
	}

	src := strings.ToUpper(r.sourceLabel)
	tgt := strings.ToUpper(r.targetLabel)
	var s SampleSummary
	for _, idx := range indices {
		if idx >= len(pairs) {
			break
		}
		if idx < 0 {
			continue
		}
		p := pairs[idx]
		sp := SampledPair{
			Index:  idx,
			Source: clipSample(p.Source),
			Target: clipSample(p.Target),
		}
		s.Samples = append(s.Samples, sp)
		fmt.Fprintf(r.w, "--- Pair %d (index %d) ---\n", len(s.Samples), idx)
		fmt.Fprintf(r.w, "%s: %s\n", src, sp.Source)
		fmt.Fprintf(r.w, "%s: %s\n", tgt, sp.Target)
		fmt.Fprintln(r.w)
	}
	return s
}
