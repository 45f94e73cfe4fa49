// Package slog provides log/slog decorators for the faqify services.
//
// Component decorators (fetcher, extractor, completer) log at DEBUG; the
// generator logs one INFO line per generation and a WARN line whenever
// the response parser had to fall back from JSON.
package slog
