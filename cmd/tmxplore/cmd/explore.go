package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/stats"
)

var (
	exploreMaxPairs int
	exploreSamples  int
	exploreBuckets  int
	exploreTopWords int
)

// numPrinter formats counts with thousands separators in console banners.
var numPrinter = message.NewPrinter(language.English)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Run every analysis over a corpus subset",
	Long: `Explore streams the corpus once, extracts up to the configured number
of aligned sentence pairs and runs every analysis over them.

Reports printed in order:
  1. Basic statistics (pair count, length means and extremes)
  2. Length ratios (target/source, with outlier pairs)
  3. Sentence length distribution (word count histogram)
  4. Vocabulary trends (top words per side)
  5. Sample pairs (evenly spaced across the subset)

Example:
  tmxplore explore --corpus data/en-fr.tmx.gz --max-pairs 20000`,
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().IntVar(&exploreMaxPairs, "max-pairs", 20000,
		"Maximum number of sentence pairs to extract")
	exploreCmd.Flags().IntVar(&exploreSamples, "samples", 0,
		"Number of sample pairs to display (0 = configured default)")
	exploreCmd.Flags().IntVar(&exploreBuckets, "buckets", 0,
		"Number of histogram buckets (0 = configured default)")
	exploreCmd.Flags().IntVar(&exploreTopWords, "top-words", 25,
		"Number of top words per side")

	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(exploreMaxPairs)
	if err != nil {
		return err
	}
	cfg.ApplyReportOverrides(exploreSamples, exploreBuckets, exploreTopWords, 0)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	orch, err := stats.NewOrchestrator(cfg, log, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	cmd.Println(color.Bold.Sprintf("Loading up to %s pairs from %s...",
		numPrinter.Sprintf("%d", cfg.Corpus.MaxPairs), cfg.Corpus.Path))

	pairs, err := orch.Load()
	if err != nil {
		return fmt.Errorf("exploration failed: %w", err)
	}

	cmd.Println(color.Bold.Sprintf("Loaded %s pairs.", numPrinter.Sprintf("%d", len(pairs))))
	cmd.Println()

	orch.Analyze(pairs)
	return nil
}
