package slog

import (
	"log/slog"
	"time"

	"github.com/ldino3121/faqify"
)

// Ensure LoggingExtractor implements faqify.Extractor.
var _ faqify.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   faqify.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next faqify.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the chosen method.
func (e *LoggingExtractor) Extract(html string) (result *faqify.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html)}
		if result != nil {
			attrs = append(attrs,
				"method", result.Method,
				"score", result.Score,
				"length", len(result.Text),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
