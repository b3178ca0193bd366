package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/stats"
	"github.com/tmxtools/tmxplore/internal/tmx"
)

var (
	ratiosMaxPairs  int
	ratiosTopRatios int
)

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "Report target/source length ratios",
	Long: `Ratios streams the corpus and reports mean target/source length
ratios by character and by word, then lists the pairs with the highest
character ratio. Pairs with very short source texts stay out of the
outlier list.

Example:
  tmxplore ratios --corpus data/en-fr.tmx.gz --top-ratios 10`,
	RunE: runRatios,
}

func init() {
	ratiosCmd.Flags().IntVar(&ratiosMaxPairs, "max-pairs", 0,
		"Maximum number of sentence pairs to extract (0 = configured default)")
	ratiosCmd.Flags().IntVar(&ratiosTopRatios, "top-ratios", 0,
		"Number of outlier pairs to list (0 = configured default)")

	rootCmd.AddCommand(ratiosCmd)
}

func runRatios(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(ratiosMaxPairs)
	if err != nil {
		return err
	}
	cfg.ApplyReportOverrides(0, 0, 0, ratiosTopRatios)

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
	reporter.LengthRatios(pairs, cfg.Report.TopRatios)
	return nil
}
