package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/gemini"
	faqifyhttp "github.com/ldino3121/faqify/http"
	"github.com/ldino3121/faqify/markup"
	"gopkg.in/yaml.v3"
)

// Extractor names accepted by --extractor and the config file.
const (
	ExtractorMarkup      = "markup"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Config holds the settings read from the config file and environment.
type Config struct {
	Gemini     GeminiConfig     `yaml:"gemini"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Batch      BatchConfig      `yaml:"batch"`

	// Database is the SQLite path for saved collections.
	Database string `yaml:"database"`
}

// GeminiConfig configures the completion service.
type GeminiConfig struct {
	APIKey string                  `yaml:"apiKey"`
	Model  string                  `yaml:"model"`
	Params faqify.GenerationParams `yaml:"params"`
}

// FetchConfig configures page retrieval.
type FetchConfig struct {
	// Timeout overrides every request profile's timeout when non-zero.
	Timeout       time.Duration `yaml:"timeout"`
	BackoffBase   time.Duration `yaml:"backoffBase"`
	BackoffMax    time.Duration `yaml:"backoffMax"`
	MinBodyLength int           `yaml:"minBodyLength"`
	MaxBodySize   int64         `yaml:"maxBodySize"`
}

// ExtractionConfig configures content extraction.
type ExtractionConfig struct {
	Extractor        string          `yaml:"extractor"`
	MinScore         int             `yaml:"minScore"`
	MaxContentLength int             `yaml:"maxContentLength"`
	Keywords         markup.Keywords `yaml:"keywords"`
}

// BatchConfig configures the batch command.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`

	// RateLimit is requests per second per domain. Zero disables limiting.
	RateLimit float64 `yaml:"rateLimit"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:  gemini.DefaultModel,
			Params: faqify.DefaultGenerationParams(),
		},
		Fetch: FetchConfig{
			BackoffBase:   faqifyhttp.DefaultBackoffBase,
			BackoffMax:    faqifyhttp.DefaultBackoffMax,
			MinBodyLength: faqifyhttp.DefaultMinBodyLength,
			MaxBodySize:   faqifyhttp.DefaultMaxBodySize,
		},
		Extraction: ExtractionConfig{
			Extractor:        ExtractorMarkup,
			MinScore:         markup.DefaultMinScore,
			MaxContentLength: markup.DefaultMaxContentLength,
			Keywords:         markup.DefaultKeywords(),
		},
		Batch: BatchConfig{
			Concurrency: 4,
			RateLimit:   1,
		},
		Database: defaultDBPath(),
	}
}

// ReadConfigFile reads a YAML config file over the defaults. A missing file
// is not an error when optional is true.
func ReadConfigFile(path string, optional bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && optional {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfig reads the config file named by FAQIFY_CONFIG or path, falling
// back to ~/.faqify/config.yaml, and applies environment overrides.
func LoadConfig(path string, getenv func(string) string) (*Config, error) {
	optional := false
	if path == "" {
		path = getenv("FAQIFY_CONFIG")
	}
	if path == "" {
		path = defaultConfigPath()
		optional = true
	}

	cfg, err := ReadConfigFile(path, optional)
	if err != nil {
		return nil, err
	}

	if key := getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if db := getenv("FAQIFY_DB"); db != "" {
		cfg.Database = db
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is inconsistent.
func (c *Config) Validate() error {
	switch c.Extraction.Extractor {
	case ExtractorMarkup, ExtractorReadability, ExtractorTrafilatura:
	default:
		return faqify.Errorf(faqify.EINVALID, "unknown extractor %q (valid: markup, readability, trafilatura)", c.Extraction.Extractor)
	}
	if c.Extraction.MaxContentLength <= 0 {
		return faqify.Errorf(faqify.EINVALID, "extraction.maxContentLength must be positive")
	}
	if c.Fetch.Timeout < 0 || c.Fetch.BackoffBase < 0 || c.Fetch.BackoffMax < 0 {
		return faqify.Errorf(faqify.EINVALID, "fetch durations must not be negative")
	}
	if c.Batch.RateLimit < 0 {
		return faqify.Errorf(faqify.EINVALID, "batch.rateLimit must not be negative")
	}
	if c.Batch.Concurrency < 1 {
		c.Batch.Concurrency = 1
	}
	if c.Database == "" {
		return faqify.Errorf(faqify.EINVALID, "database path required")
	}
	return nil
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".faqify")
}

func defaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func defaultDBPath() string {
	return filepath.Join(configDir(), "faqify.db")
}
