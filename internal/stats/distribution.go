package stats

import (
	"fmt"

	"github.com/tmxtools/tmxplore/internal/corpus"
)

// HistogramBucket is one inclusive word count range.
type HistogramBucket struct {
	Lo    int
	Hi    int
	Count int
}

// Histogram is one side's bucketed distribution of sentence word counts.
// Buckets always has the requested length; unused buckets have Count 0.
type Histogram struct {
	BucketWidth int
	MaxWords    int
	Buckets     []HistogramBucket
}

// DistributionSummary holds both sides' histograms.
type DistributionSummary struct {
	Source Histogram
	Target Histogram
}

// buildHistogram buckets word counts into numBuckets equal-width ranges.
// The width is ceil(max/numBuckets) with a floor of one, and the last
// bucket absorbs the remainder up to the maximum.
func buildHistogram(words []int, numBuckets int) Histogram {
	maxWords := 0
	for _, w := range words {
		maxWords = max(maxWords, w)
	}
	width := max(1, (maxWords+numBuckets-1)/numBuckets)

	h := Histogram{
		BucketWidth: width,
		MaxWords:    maxWords,
		Buckets:     make([]HistogramBucket, numBuckets),
	}
	for i := range h.Buckets {
		hi := (i+1)*width - 1
		if i == numBuckets-1 {
			hi = maxWords
		}
		h.Buckets[i] = HistogramBucket{Lo: i * width, Hi: hi}
	}
	for _, w := range words {
		h.Buckets[min(w/width, numBuckets-1)].Count++
	}
	return h
}

// printHistogram writes the non-empty buckets in ascending range order.
func (r *Reporter) printHistogram(h Histogram) {
	for _, b := range h.Buckets {
		if b.Count == 0 {
			continue
		}
		fmt.Fprintf(r.w, "  [%3d-%3d]: %s\n", b.Lo, b.Hi, r.count(b.Count))
	}
}

// LengthDistribution reports per-side histograms of sentence word counts
// over numBuckets equal-width buckets. Empty buckets are kept in the
// summary but omitted from the report.
func (r *Reporter) LengthDistribution(pairs corpus.Pairs, numBuckets int) DistributionSummary {
	fmt.Fprintf(r.w, "\n=== Sentence length (words) distribution ===\n")
	if len(pairs) == 0 {
		fmt.Fprintln(r.w, "No pairs to analyze.")
		return DistributionSummary{}
	}
	if numBuckets <= 0 {
		numBuckets = 1
	}

	srcWords := make([]int, len(pairs))
	tgtWords := make([]int, len(pairs))
	for i, p := range pairs {
		srcWords[i] = p.SourceWords()
		tgtWords[i] = p.TargetWords()
	}
	s := DistributionSummary{
		Source: buildHistogram(srcWords, numBuckets),
		Target: buildHistogram(tgtWords, numBuckets),
	}

	fmt.Fprintf(r.w, "%s (bucket = word count range):\n", r.sourceLabel)
	r.printHistogram(s.Source)
	fmt.Fprintf(r.w, "%s:\n", r.targetLabel)
	r.printHistogram(s.Target)
	return s
}
