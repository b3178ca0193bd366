package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/tmxtools/tmxplore/internal/config"
	"github.com/tmxtools/tmxplore/internal/corpus"
	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/tmx"
)

// pipelineTopRatios is the outlier list size used by the full pipeline.
// Standalone ratio reports use the configured value instead.
const pipelineTopRatios = 5

// ExploreResult contains the loaded pairs and the summaries of a full
// exploration run.
type ExploreResult struct {
	Pairs        corpus.Pairs
	StartedAt    time.Time
	CompletedAt  time.Time
	LoadDuration time.Duration
	Basic        BasicSummary
	Ratios       RatioSummary
	Distribution DistributionSummary
	Vocabulary   VocabularySummary
	Samples      SampleSummary
}

// Orchestrator loads a corpus subset once and runs every analysis over it
// in a fixed order.
type Orchestrator struct {
	cfg      *config.Config
	logger   *logger.Logger
	reporter *Reporter
	loadedIn time.Duration
}

// NewOrchestrator creates an orchestrator writing reports to w (os.Stdout
// when nil). A nil logger falls back to the default logger.
func NewOrchestrator(cfg *config.Config, log *logger.Logger, w io.Writer) (*Orchestrator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Orchestrator{
		cfg:      cfg,
		logger:   log,
		reporter: NewReporter(w, cfg.Corpus.SourceLang, cfg.Corpus.TargetLang),
	}, nil
}

// Load streams the configured corpus and returns up to the configured
// number of aligned pairs.
func (o *Orchestrator) Load() (corpus.Pairs, error) {
	log := o.logger.WithCorpus(o.cfg.Corpus.Path).WithLangs(o.cfg.Corpus.SourceLang, o.cfg.Corpus.TargetLang)
	log.Infow("Loading corpus subset", "max_pairs", o.cfg.Corpus.MaxPairs)

	start := time.Now()
	pairs, err := tmx.LoadFile(o.cfg.Corpus.Path, tmx.Options{
		SourceLang: o.cfg.Corpus.SourceLang,
		TargetLang: o.cfg.Corpus.TargetLang,
		MaxPairs:   o.cfg.Corpus.MaxPairs,
		Logger:     o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	o.loadedIn = time.Since(start)
	log.Infow("Corpus subset loaded",
		"pairs", len(pairs),
		"duration", o.loadedIn,
	)
	return pairs, nil
}

// Analyze prints every report over pairs in order: basic statistics,
// length ratios, length distribution, vocabulary trends, sample pairs.
func (o *Orchestrator) Analyze(pairs corpus.Pairs) *ExploreResult {
	log := o.logger.WithFields(map[string]interface{}{"pairs": len(pairs)})

	result := &ExploreResult{
		Pairs:        pairs,
		StartedAt:    time.Now(),
		LoadDuration: o.loadedIn,
	}
	log.WithAnalysis("basic").Debugw("Running analysis")
	result.Basic = o.reporter.BasicStats(pairs)
	log.WithAnalysis("ratios").Debugw("Running analysis")
	result.Ratios = o.reporter.LengthRatios(pairs, pipelineTopRatios)
	log.WithAnalysis("distribution").Debugw("Running analysis")
	result.Distribution = o.reporter.LengthDistribution(pairs, o.cfg.Report.Buckets)
	log.WithAnalysis("vocabulary").Debugw("Running analysis")
	result.Vocabulary = o.reporter.VocabularyTrends(pairs, o.cfg.Report.TopWords)
	log.WithAnalysis("samples").Debugw("Running analysis")
	result.Samples = o.reporter.SamplePairs(pairs, o.cfg.Report.Samples)
	result.CompletedAt = time.Now()

	o.logger.Infow("Exploration completed",
		"pairs", len(pairs),
		"duration", result.CompletedAt.Sub(result.StartedAt),
	)
	return result
}

// Run loads the corpus and runs every analysis over it. The loaded pairs
// are returned on the result so callers can run further analyses without
// reparsing the corpus.
func (o *Orchestrator) Run() (*ExploreResult, error) {
	started := time.Now()
	pairs, err := o.Load()
	if err != nil {
		return nil, err
	}
	result := o.Analyze(pairs)
	result.StartedAt = started
	return result, nil
}
