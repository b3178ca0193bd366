package tmx

import (
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tmxtools/tmxplore/internal/corpus"
	"github.com/tmxtools/tmxplore/internal/logger"
)

// Options controls a subset load.
type Options struct {
	SourceLang string         // variant tag stored as Pair.Source, compared case-sensitively
	TargetLang string         // variant tag stored as Pair.Target
	MaxPairs   int            // stop after this many pairs; <= 0 loads nothing
	Logger     *logger.Logger // optional; progress is reported at debug level
}

// progressEvery is the translation-unit interval for progress logging.
const progressEvery = 10000

// parseCursor is the per-unit state of the streaming parse. It is reset at
// every unit start and never outlives the unit.
type parseCursor struct {
	inUnit    bool
	source    string
	target    string
	hasSource bool
	hasTarget bool
}

// Load streams translation units from r and returns at most opts.MaxPairs
// aligned pairs in document order.
//
// A unit contributes a pair when both tracked languages appear among its
// variants with non-empty segment text. The first variant of a language
// claims that language's slot; later variants with the same tag inside the
// unit are ignored. Units missing either language are skipped without
// diagnostics. Parsing stops the moment the cap is reached, so memory use
// is bounded by the cap no matter how large the document is.
//
// A malformed document, including one that ends with elements still open,
// returns an error and no pairs.
func Load(r io.Reader, opts Options) (corpus.Pairs, error) {
	pairs := corpus.Pairs{}
	if opts.MaxPairs <= 0 {
		return pairs, nil
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefault()
	}

	dec := xml.NewDecoder(r)
	var cur parseCursor
	units := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return pairs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse TMX stream: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tu":
				cur = parseCursor{inUnit: true}
				units++
				if units%progressEvery == 0 {
					log.Debugw("Scanning corpus", "units", units, "pairs", len(pairs))
				}
			case "tuv":
				if !cur.inUnit {
					continue
				}
				// segmentText consumes the variant through its end tag.
				lang := langAttr(t)
				text, err := segmentText(dec)
				if err != nil {
					return nil, fmt.Errorf("parse TMX stream: %w", err)
				}
				switch {
				case lang == opts.SourceLang && !cur.hasSource:
					cur.source, cur.hasSource = text, true
				case lang == opts.TargetLang && !cur.hasTarget:
					cur.target, cur.hasTarget = text, true
				}
			}
		case xml.EndElement:
			if t.Name.Local != "tu" || !cur.inUnit {
				continue
			}
			cur.inUnit = false
			if cur.source != "" && cur.target != "" {
				pairs = append(pairs, corpus.Pair{Source: cur.source, Target: cur.target})
				if len(pairs) >= opts.MaxPairs {
					return pairs, nil
				}
			}
		}
	}
}

// Open opens a corpus file for streaming, transparently decompressing
// gzip when the name ends in ".gz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open corpus %s: %w", path, err)
		}
		return struct {
			io.Reader
			io.Closer
		}{zr, f}, nil
	}
	return f, nil
}

// LoadFile opens path and loads a subset from it. The file is closed on
// every return path, including the cap-reached early stop.
func LoadFile(path string, opts Options) (corpus.Pairs, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Load(rc, opts)
}

// Probe reads the corpus only far enough to find one aligned pair. It is a
// cheap preflight for the common case of a healthy corpus; a corpus with no
// qualifying pair at all is scanned to the end before the failure is
// reported.
func Probe(path string, opts Options) error {
	opts.MaxPairs = 1
	pairs, err := LoadFile(path, opts)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no %s/%s pair found in corpus", opts.SourceLang, opts.TargetLang)
	}
	return nil
}
