package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/mock"
	faqslog "github.com/ldino3121/faqify/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCollectionService(t *testing.T) {
	t.Parallel()

	t.Run("logs create with generated id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.CollectionService{
			CreateCollectionFn: func(ctx context.Context, c *faqify.Collection) error {
				c.ID = "col-1"
				return nil
			},
		}

		svc := faqslog.NewLoggingCollectionService(inner, newDebugLogger(&buf))
		err := svc.CreateCollection(context.Background(), &faqify.Collection{Name: "transit", FAQs: make([]faqify.FAQ, 3)})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create collection")
		assert.Contains(t, output, "id=col-1")
		assert.Contains(t, output, "faqs=3")
	})

	t.Run("delegates finds and deletes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var deleted string
		inner := &mock.CollectionService{
			FindCollectionByIDFn: func(ctx context.Context, id string) (*faqify.Collection, error) {
				return nil, faqify.Errorf(faqify.ENOTFOUND, "collection not found")
			},
			FindCollectionsFn: func(ctx context.Context, filter faqify.CollectionFilter) ([]*faqify.Collection, error) {
				return []*faqify.Collection{{ID: "a"}, {ID: "b"}}, nil
			},
			DeleteCollectionFn: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		svc := faqslog.NewLoggingCollectionService(inner, newDebugLogger(&buf))
		ctx := context.Background()

		_, err := svc.FindCollectionByID(ctx, "missing")
		assert.Equal(t, faqify.ENOTFOUND, faqify.ErrorCode(err))

		found, err := svc.FindCollections(ctx, faqify.CollectionFilter{})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		require.NoError(t, svc.DeleteCollection(ctx, "a"))
		assert.Equal(t, "a", deleted)

		output := buf.String()
		assert.Contains(t, output, "collection not found")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "delete collection")
	})
}
