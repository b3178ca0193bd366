package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/stats"
	"github.com/tmxtools/tmxplore/internal/tmx"
)

var (
	sampleMaxPairs int
	sampleCount    int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Display sample pairs from the corpus",
	Long: `Sample streams the corpus and displays pairs at evenly spaced
positions across the extracted subset. Long texts are truncated for
display.

Example:
  tmxplore sample --corpus data/en-fr.tmx.gz --samples 5`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().IntVar(&sampleMaxPairs, "max-pairs", 0,
		"Maximum number of sentence pairs to extract (0 = configured default)")
	sampleCmd.Flags().IntVar(&sampleCount, "samples", 0,
		"Number of sample pairs to display (0 = configured default)")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(sampleMaxPairs)
	if err != nil {
		return err
	}
	cfg.ApplyReportOverrides(sampleCount, 0, 0, 0)

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
	reporter.SamplePairs(pairs, cfg.Report.Samples)
	return nil
}
