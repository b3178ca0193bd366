// Package config provides configuration structures and loading for tmxplore.
package config

// Config represents the complete application configuration.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus" mapstructure:"corpus"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// CorpusConfig describes the TMX corpus and how much of it to load.
type CorpusConfig struct {
	Path       string `yaml:"path" mapstructure:"path"`               // .tmx, or .tmx.gz for gzipped corpora
	SourceLang string `yaml:"source_lang" mapstructure:"source_lang"` // variant tag kept as the source side
	TargetLang string `yaml:"target_lang" mapstructure:"target_lang"` // variant tag kept as the target side
	MaxPairs   int    `yaml:"max_pairs" mapstructure:"max_pairs"`     // cap on extracted pairs
}

// ReportConfig represents report sizing settings.
type ReportConfig struct {
	Samples   int `yaml:"samples" mapstructure:"samples"`       // pairs shown by the sample display
	Buckets   int `yaml:"buckets" mapstructure:"buckets"`       // length histogram bucket count
	TopWords  int `yaml:"top_words" mapstructure:"top_words"`   // vocabulary list size per language
	TopRatios int `yaml:"top_ratios" mapstructure:"top_ratios"` // extreme-ratio list size
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path:       "data/en-fr.tmx",
			SourceLang: "en",
			TargetLang: "fr",
			MaxPairs:   50000,
		},
		Report: ReportConfig{
			Samples:   5,
			Buckets:   10,
			TopWords:  20,
			TopRatios: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}
