package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/stats"
	"github.com/tmxtools/tmxplore/internal/tmx"
)

var statsMaxPairs int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report basic corpus statistics",
	Long: `Stats streams the corpus and reports the pair count, per-side
character length statistics and mean words per sentence.

Example:
  tmxplore stats --corpus data/en-fr.tmx.gz --max-pairs 5000`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsMaxPairs, "max-pairs", 0,
		"Maximum number of sentence pairs to extract (0 = configured default)")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(statsMaxPairs)
	if err != nil {
		return err
	}

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
	reporter.BasicStats(pairs)
	return nil
}
