package mock

import (
	"context"

	"github.com/ldino3121/faqify"
)

var _ faqify.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of faqify.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
