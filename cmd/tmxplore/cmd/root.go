package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmxtools/tmxplore/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	corpusPath string
	sourceLang string
	targetLang string
)

var rootCmd = &cobra.Command{
	Use:   "tmxplore",
	Short: "TMX Translation Memory Explorer",
	Long: `A streaming CLI tool for exploring large TMX translation memories
without loading the whole document into memory.

Features:
  - Streaming XML parsing with a hard cap on extracted pairs
  - Namespace-tolerant TMX handling (prefixed, default or none)
  - Transparent gzip decompression for .gz corpora
  - Read-only analyses: statistics, ratios, histograms, vocabulary, samples`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (built-in defaults when omitted)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Corpus overrides
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "",
		"Override corpus file path (.tmx, .tmx.gz)")
	rootCmd.PersistentFlags().StringVar(&sourceLang, "source-lang", "",
		"Override source language tag (case-sensitive)")
	rootCmd.PersistentFlags().StringVar(&targetLang, "target-lang", "",
		"Override target language tag (case-sensitive)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	CorpusPath string
	SourceLang string
	TargetLang string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		CorpusPath: corpusPath,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}
}

// loadConfig loads the configuration file when one was given, falls back to
// built-in defaults otherwise, then applies CLI overrides and validates the
// result. maxPairs comes from the per-command flag; zero keeps the
// configured value.
func loadConfig(maxPairs int) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.CorpusPath, overrides.SourceLang, overrides.TargetLang,
		overrides.LogLevel, overrides.LogFormat, maxPairs)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
