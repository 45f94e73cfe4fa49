package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/fs"
	"github.com/ldino3121/faqify/gemini"
	"github.com/ldino3121/faqify/generate"
	"github.com/ldino3121/faqify/goquery"
	"github.com/ldino3121/faqify/htmltomarkdown"
	faqifyhttp "github.com/ldino3121/faqify/http"
	"github.com/ldino3121/faqify/markup"
	"github.com/ldino3121/faqify/pdf"
	"github.com/ldino3121/faqify/readability"
	faqslog "github.com/ldino3121/faqify/slog"
	"github.com/ldino3121/faqify/sqlite"
	"github.com/ldino3121/faqify/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides the configured path when set.
	DBPath string

	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// Stdin is read by "generate -". Defaults to os.Stdin.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CollectionService faqify.CollectionService
	NewGenerator      GeneratorFactory

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	for _, c := range m.closers {
		_ = c.Close()
	}
	m.closers = nil
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    m.Stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		ReadFile: os.ReadFile,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("faqify"),
		kong.Description("Generate FAQs from web pages, documents and text."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'faqify --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg, err := LoadConfig(cli.Config, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	if m.DBPath != "" {
		cfg.Database = m.DBPath
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Exporter = fs.NewExporter()

	// Open database
	if m.CollectionService == nil {
		if err := os.MkdirAll(filepath.Dir(cfg.Database), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(cfg.Database)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FAQIFY_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.Database, err)
		}
		m.CollectionService = faqslog.NewLoggingCollectionService(sqlite.NewCollectionService(m.DB), deps.Logger)
	}
	defer m.Close()
	deps.Collections = m.CollectionService

	deps.NewGenerator = m.NewGenerator
	if deps.NewGenerator == nil && (command == "generate" || command == "batch") {
		if cfg.Gemini.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return faqify.Errorf(faqify.EAUTH, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.NewGenerator = m.generatorFactory(client, cfg, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// generatorFactory wires the production pipeline: HTTP fetcher, the chosen
// extractor, Gemini completion and token counting, each behind a logging
// decorator.
func (m *Main) generatorFactory(client *genai.Client, cfg *Config, logger *slog.Logger) GeneratorFactory {
	return func(name string) (faqify.Generator, error) {
		if name == "" {
			name = cfg.Extraction.Extractor
		}

		extractor, err := newExtractor(name, cfg)
		if err != nil {
			return nil, err
		}

		fetchOpts := []faqifyhttp.Option{
			faqifyhttp.WithBackoff(cfg.Fetch.BackoffBase, cfg.Fetch.BackoffMax),
			faqifyhttp.WithMinBodyLength(cfg.Fetch.MinBodyLength),
			faqifyhttp.WithMaxBodySize(cfg.Fetch.MaxBodySize),
		}
		if cfg.Fetch.Timeout > 0 {
			fetchOpts = append(fetchOpts, faqifyhttp.WithTimeout(cfg.Fetch.Timeout))
		}
		fetcher := faqifyhttp.NewFetcher(fetchOpts...)
		m.closers = append(m.closers, fetcher)

		opts := []generate.Option{
			generate.WithDocumentReader(pdf.NewReader()),
			generate.WithMetaReader(goquery.NewMetaReader()),
			generate.WithParams(cfg.Gemini.Params),
			generate.WithMaxContentLength(cfg.Extraction.MaxContentLength),
		}
		if tc, err := gemini.NewTokenCounter(cfg.Gemini.Model); err == nil {
			opts = append(opts, generate.WithTokenCounter(tc))
		} else {
			logger.Debug("token counting disabled", "model", cfg.Gemini.Model, "err", err)
		}

		gen := generate.NewGenerator(
			faqslog.NewLoggingFetcher(fetcher, logger),
			faqslog.NewLoggingExtractor(extractor, logger),
			faqslog.NewLoggingCompleter(gemini.NewCompleter(client, cfg.Gemini.Model), logger),
			opts...,
		)
		return faqslog.NewLoggingGenerator(gen, logger), nil
	}
}

// newExtractor returns the named content extractor.
func newExtractor(name string, cfg *Config) (faqify.Extractor, error) {
	switch name {
	case ExtractorMarkup:
		return markup.NewExtractor(
			markup.WithKeywords(cfg.Extraction.Keywords),
			markup.WithMinScore(cfg.Extraction.MinScore),
			markup.WithMaxContentLength(cfg.Extraction.MaxContentLength),
		), nil
	case ExtractorReadability:
		return readability.NewExtractor(readability.WithConverter(htmltomarkdown.NewConverter())), nil
	case ExtractorTrafilatura:
		return trafilatura.NewExtractor(trafilatura.WithConverter(htmltomarkdown.NewConverter())), nil
	default:
		return nil, faqify.Errorf(faqify.EINVALID, "unknown extractor %q (valid: markup, readability, trafilatura)", name)
	}
}

// newLogger returns a text logger on w. Verbose output includes the
// component-level debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
