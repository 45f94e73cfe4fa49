package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/fs"
)

// GeneratorFactory builds a Generator using the named extractor.
type GeneratorFactory func(extractor string) (faqify.Generator, error)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Config      *Config
	Collections faqify.CollectionService
	Exporter    *fs.Exporter

	// NewGenerator is nil when no completion service is configured.
	NewGenerator GeneratorFactory

	// ReadFile reads local files named on the command line.
	ReadFile func(path string) ([]byte, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Config  string `help:"Path to a YAML config file"`

	Generate GenerateCmd `cmd:"" help:"Generate FAQs from a URL, a file or pasted text"`
	Batch    BatchCmd    `cmd:"" help:"Generate FAQs for every source listed in a file"`
	List     ListCmd     `cmd:"" help:"List saved FAQ collections"`
	Show     ShowCmd     `cmd:"" help:"Show a saved FAQ collection"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved FAQ collection"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Source    string        `arg:"" optional:"" help:"URL or file path; '-' reads text from stdin"`
	Text      string        `short:"t" help:"Generate from this text instead of a URL or file"`
	Count     string        `short:"n" default:"5" help:"Number of FAQs (3-10)"`
	Save      bool          `short:"s" help:"Save the FAQs as a collection"`
	Name      string        `help:"Collection name when saving (defaults to the page title)"`
	Out       string        `short:"o" help:"Write FAQs to a file (.json or .md)"`
	JSON      bool          `help:"Print the result or error envelope as JSON"`
	Timeout   time.Duration `default:"2m" help:"Overall time limit"`
	Extractor string        `help:"Content extractor: markup, readability or trafilatura"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string        `arg:"" help:"File listing one URL or file path per line"`
	Count       string        `short:"n" default:"5" help:"Number of FAQs per source (3-10)"`
	Save        bool          `short:"s" help:"Save each result as a collection"`
	OutDir      string        `short:"o" name:"out-dir" help:"Write one file per source into this directory"`
	Format      string        `default:"markdown" enum:"markdown,json" help:"Export format for --out-dir"`
	Concurrency int           `short:"c" help:"Sources processed at once"`
	Timeout     time.Duration `default:"2m" help:"Time limit per source"`
	Extractor   string        `help:"Content extractor: markup, readability or trafilatura"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `default:"50" help:"Maximum collections to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Collection ID"`
	JSON bool   `help:"Print as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Collection ID"`
	Force bool   `help:"Confirm deletion"`
}
