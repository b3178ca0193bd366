package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/stats"
	"github.com/tmxtools/tmxplore/internal/tmx"
)

var (
	histogramMaxPairs int
	histogramBuckets  int
)

var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Report the sentence length distribution",
	Long: `Histogram streams the corpus and reports per-side histograms of
sentence lengths in words, over equal-width buckets. Only occupied
buckets appear in the report.

Example:
  tmxplore histogram --corpus data/en-fr.tmx.gz --buckets 10`,
	RunE: runHistogram,
}

func init() {
	histogramCmd.Flags().IntVar(&histogramMaxPairs, "max-pairs", 0,
		"Maximum number of sentence pairs to extract (0 = configured default)")
	histogramCmd.Flags().IntVar(&histogramBuckets, "buckets", 0,
		"Number of histogram buckets (0 = configured default)")

	rootCmd.AddCommand(histogramCmd)
}

func runHistogram(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(histogramMaxPairs)
	if err != nil {
		return err
	}
	cfg.ApplyReportOverrides(0, histogramBuckets, 0, 0)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	pairs, err := tmx.LoadFile(cfg.Corpus.Path, tmx.Options{
		SourceLang: cfg.Corpus.SourceLang,
		TargetLang: cfg.Corpus.TargetLang,
		MaxPairs:   cfg.Corpus.MaxPairs,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	reporter := stats.NewReporter(cmd.OutOrStdout(), cfg.Corpus.SourceLang, cfg.Corpus.TargetLang)
	reporter.LengthDistribution(pairs, cfg.Report.Buckets)
	return nil
}
