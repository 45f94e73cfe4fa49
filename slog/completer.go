package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ldino3121/faqify"
)

// Ensure LoggingCompleter implements faqify.Completer.
var _ faqify.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging.
type LoggingCompleter struct {
	next   faqify.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next faqify.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs prompt and
// response sizes.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string, params faqify.GenerationParams) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.DebugContext(ctx, "complete",
			"prompt", len(prompt),
			"response", len(text),
			"temperature", params.Temperature,
			"maxOutputTokens", params.MaxOutputTokens,
			"duration", time.Since(begin),
			"code", faqify.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, prompt, params)
}
