package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/stats"
	"github.com/tmxtools/tmxplore/internal/tmx"
)

var (
	vocabMaxPairs int
	vocabTopWords int
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Report vocabulary trends",
	Long: `Vocab streams the corpus, tokenizes both sides into lower-cased
words and reports token totals plus the most frequent words per side.
Equal counts keep their first-encountered order.

Example:
  tmxplore vocab --corpus data/en-fr.tmx.gz --top-words 25`,
	RunE: runVocab,
}

func init() {
	vocabCmd.Flags().IntVar(&vocabMaxPairs, "max-pairs", 0,
		"Maximum number of sentence pairs to extract (0 = configured default)")
	vocabCmd.Flags().IntVar(&vocabTopWords, "top-words", 0,
		"Number of top words per side (0 = configured default)")

	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(vocabMaxPairs)
	if err != nil {
		return err
	}
	cfg.ApplyReportOverrides(0, 0, vocabTopWords, 0)

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
	reporter.VocabularyTrends(pairs, cfg.Report.TopWords)
	return nil
}
