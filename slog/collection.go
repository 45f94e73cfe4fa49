package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ldino3121/faqify"
)

// Ensure LoggingCollectionService implements faqify.CollectionService.
var _ faqify.CollectionService = (*LoggingCollectionService)(nil)

// LoggingCollectionService wraps a CollectionService with debug logging.
type LoggingCollectionService struct {
	next   faqify.CollectionService
	logger *slog.Logger
}

// NewLoggingCollectionService creates a new LoggingCollectionService.
func NewLoggingCollectionService(next faqify.CollectionService, logger *slog.Logger) *LoggingCollectionService {
	return &LoggingCollectionService{next: next, logger: logger}
}

func (s *LoggingCollectionService) CreateCollection(ctx context.Context, c *faqify.Collection) (err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "create collection",
			"id", c.ID,
			"name", c.Name,
			"faqs", len(c.FAQs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCollection(ctx, c)
}

func (s *LoggingCollectionService) FindCollectionByID(ctx context.Context, id string) (c *faqify.Collection, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "find collection",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCollectionByID(ctx, id)
}

func (s *LoggingCollectionService) FindCollections(ctx context.Context, filter faqify.CollectionFilter) (collections []*faqify.Collection, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "find collections",
			"count", len(collections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCollections(ctx, filter)
}

func (s *LoggingCollectionService) DeleteCollection(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "delete collection",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCollection(ctx, id)
}
