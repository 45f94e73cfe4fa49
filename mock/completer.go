package mock

import (
	"context"

	"github.com/ldino3121/faqify"
)

var _ faqify.Completer = (*Completer)(nil)

// Completer is a mock implementation of faqify.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string, params faqify.GenerationParams) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string, params faqify.GenerationParams) (string, error) {
	return c.CompleteFn(ctx, prompt, params)
}

var _ faqify.Generator = (*Generator)(nil)

// Generator is a mock implementation of faqify.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, src faqify.Source, count int) (*faqify.Result, error)
}

func (g *Generator) Generate(ctx context.Context, src faqify.Source, count int) (*faqify.Result, error) {
	return g.GenerateFn(ctx, src, count)
}
