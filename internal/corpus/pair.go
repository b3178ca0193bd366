// Package corpus contains the shared sentence-pair types used across the
// loader and the statistics packages to avoid import cycles.
package corpus

import (
	"strings"
	"unicode/utf8"
)

// Pair is one aligned sentence pair extracted from a translation unit.
// Both sides are non-empty UTF-8 text; a record that could not fill both
// sides never becomes a Pair.
type Pair struct {
	Source string // text of the source-language variant
	Target string // text of the target-language variant
}

// Pairs is an ordered collection of sentence pairs in document order.
type Pairs []Pair

// SourceChars returns the source length in Unicode code points.
func (p Pair) SourceChars() int {
	return utf8.RuneCountInString(p.Source)
}

// TargetChars returns the target length in Unicode code points.
func (p Pair) TargetChars() int {
	return utf8.RuneCountInString(p.Target)
}

// SourceWords returns the number of whitespace-delimited tokens on the
// source side.
func (p Pair) SourceWords() int {
	return len(strings.Fields(p.Source))
}

// TargetWords returns the number of whitespace-delimited tokens on the
// target side.
func (p Pair) TargetWords() int {
	return len(strings.Fields(p.Target))
}
