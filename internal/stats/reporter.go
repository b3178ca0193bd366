// Package stats implements the read-only corpus analyses and their console
// reports. Every analysis prints a human-readable report and returns a
// structured summary; an empty collection yields a notice and a zero-valued
// summary, never an error.
package stats

import (
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter runs analyses over a pair collection and writes their reports.
type Reporter struct {
	w           io.Writer
	np          *message.Printer
	sourceLabel string
	targetLabel string
}

// NewReporter creates a Reporter writing to w (os.Stdout when nil). The
// labels name the two sides in report output, typically the tracked
// language tags such as "en" and "fr".
func NewReporter(w io.Writer, sourceLabel, targetLabel string) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	if sourceLabel == "" {
		sourceLabel = "source"
	}
	if targetLabel == "" {
		targetLabel = "target"
	}
	return &Reporter{
		w:           w,
		np:          message.NewPrinter(language.English),
		sourceLabel: sourceLabel,
		targetLabel: targetLabel,
	}
}

// count formats n with thousands separators.
func (r *Reporter) count(n int) string {
	return r.np.Sprintf("%d", n)
}

// labels returns both side labels padded to a common display width so
// stacked report lines align.
func (r *Reporter) labels() (string, string) {
	w := max(runewidth.StringWidth(r.sourceLabel), runewidth.StringWidth(r.targetLabel))
	return runewidth.FillRight(r.sourceLabel, w), runewidth.FillRight(r.targetLabel, w)
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
