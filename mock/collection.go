package mock

import (
	"context"

	"github.com/ldino3121/faqify"
)

var _ faqify.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of faqify.CollectionService.
type CollectionService struct {
	CreateCollectionFn   func(ctx context.Context, c *faqify.Collection) error
	FindCollectionByIDFn func(ctx context.Context, id string) (*faqify.Collection, error)
	FindCollectionsFn    func(ctx context.Context, filter faqify.CollectionFilter) ([]*faqify.Collection, error)
	DeleteCollectionFn   func(ctx context.Context, id string) error
}

func (s *CollectionService) CreateCollection(ctx context.Context, c *faqify.Collection) error {
	return s.CreateCollectionFn(ctx, c)
}

func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*faqify.Collection, error) {
	return s.FindCollectionByIDFn(ctx, id)
}

func (s *CollectionService) FindCollections(ctx context.Context, filter faqify.CollectionFilter) ([]*faqify.Collection, error) {
	return s.FindCollectionsFn(ctx, filter)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollectionFn(ctx, id)
}
