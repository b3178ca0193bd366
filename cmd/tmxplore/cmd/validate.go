package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/tmxtools/tmxplore/internal/config"
	"github.com/tmxtools/tmxplore/internal/logger"
	"github.com/tmxtools/tmxplore/internal/tmx"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and probe the corpus",
	Long: `Validate checks the configuration and probes the corpus file to
ensure an exploration run can succeed.

Checks performed:
  - Configuration syntax and required fields
  - Language tags present and distinct
  - Corpus file readable (plain or gzip)
  - At least one aligned pair for the tracked languages

Example:
  tmxplore validate --config tmxplore.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration without failing on validation errors, so every
	// problem gets reported below.
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.CorpusPath, overrides.SourceLang, overrides.TargetLang,
		overrides.LogLevel, overrides.LogFormat, 0)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Starting validation checks...")

	shownConfig := configFile
	if shownConfig == "" {
		shownConfig = "(built-in defaults)"
	}
	cmd.Printf("\n=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", shownConfig)
	cmd.Printf("Corpus: %s\n", cfg.Corpus.Path)
	cmd.Printf("Languages: %s -> %s\n\n", cfg.Corpus.SourceLang, cfg.Corpus.TargetLang)

	hasErrors := false
	if err := cfg.Validate(); err != nil {
		cmd.Printf("%s Configuration invalid: %v\n", color.Red.Sprint("❌"), err)
		hasErrors = true
	} else {
		cmd.Printf("%s Configuration valid\n", color.Green.Sprint("✅"))
	}

	// Probe the corpus only when the configuration itself holds up.
	if !hasErrors {
		err := tmx.Probe(cfg.Corpus.Path, tmx.Options{
			SourceLang: cfg.Corpus.SourceLang,
			TargetLang: cfg.Corpus.TargetLang,
			Logger:     log,
		})
		if err != nil {
			cmd.Printf("%s Corpus probe failed: %v\n", color.Red.Sprint("❌"), err)
			hasErrors = true
		} else {
			cmd.Printf("%s Corpus readable, aligned %s/%s pair found\n",
				color.Green.Sprint("✅"), cfg.Corpus.SourceLang, cfg.Corpus.TargetLang)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	cmd.Printf("\n=== Validation Complete ===\n")
	cmd.Printf("%s Configuration and corpus validated successfully\n", color.Green.Sprint("✅"))
	return nil
}
