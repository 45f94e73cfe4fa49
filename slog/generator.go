package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ldino3121/faqify"
)

// Ensure LoggingGenerator implements faqify.Generator.
var _ faqify.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   faqify.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next faqify.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator. Parser fallbacks and
// synthesized records are logged at WARN.
func (g *LoggingGenerator) Generate(ctx context.Context, src faqify.Source, count int) (result *faqify.Result, err error) {
	defer func(begin time.Time) {
		if err != nil {
			g.logger.ErrorContext(ctx, "generate",
				"kind", src.Kind,
				"source", src.String(),
				"count", count,
				"duration", time.Since(begin),
				"code", faqify.ErrorCode(err),
				"err", err,
			)
			return
		}
		if result.ParseMode != faqify.ParseJSON {
			g.logger.WarnContext(ctx, "response parser fallback",
				"source", src.String(),
				"mode", result.ParseMode,
			)
		}
		if result.Synthesized > 0 {
			g.logger.WarnContext(ctx, "synthesized faqs",
				"source", src.String(),
				"synthesized", result.Synthesized,
			)
		}
		g.logger.InfoContext(ctx, "generate",
			"kind", src.Kind,
			"source", src.String(),
			"count", len(result.FAQs),
			"method", result.Method,
			"mode", result.ParseMode,
			"contentLength", result.ContentLength,
			"promptTokens", result.PromptTokens,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return g.next.Generate(ctx, src, count)
}
