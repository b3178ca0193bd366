package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	// Validate corpus settings
	if err := c.validateCorpus(); err != nil {
		errors = append(errors, err...)
	}

	// Validate report settings
	if err := c.validateReport(); err != nil {
		errors = append(errors, err...)
	}

	// Validate logging settings
	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateCorpus() ValidationErrors {
	var errors ValidationErrors

	if c.Corpus.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "corpus.path",
			Message: "path is required",
		})
	}

	if c.Corpus.SourceLang == "" {
		errors = append(errors, ValidationError{
			Field:   "corpus.source_lang",
			Message: "source_lang is required",
		})
	}

	if c.Corpus.TargetLang == "" {
		errors = append(errors, ValidationError{
			Field:   "corpus.target_lang",
			Message: "target_lang is required",
		})
	}

	if c.Corpus.SourceLang != "" && c.Corpus.SourceLang == c.Corpus.TargetLang {
		errors = append(errors, ValidationError{
			Field:   "corpus.target_lang",
			Message: "target_lang must differ from source_lang",
		})
	}

	if c.Corpus.MaxPairs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "corpus.max_pairs",
			Message: "max_pairs must be positive",
		})
	}

	return errors
}

func (c *Config) validateReport() ValidationErrors {
	var errors ValidationErrors

	if c.Report.Samples <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.samples",
			Message: "samples must be positive",
		})
	}

	if c.Report.Buckets <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.buckets",
			Message: "buckets must be positive",
		})
	}

	if c.Report.TopWords <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.top_words",
			Message: "top_words must be positive",
		})
	}

	if c.Report.TopRatios <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.top_ratios",
			Message: "top_ratios must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
