package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/markup"
)

// Ensure Generator implements faqify.Generator at compile time.
var _ faqify.Generator = (*Generator)(nil)

// Generator runs the FAQ pipeline for a single source.
type Generator struct {
	fetcher   faqify.Fetcher
	extractor faqify.Extractor
	completer faqify.Completer
	documents faqify.DocumentReader
	meta      faqify.MetaReader
	tokens    faqify.TokenCounter
	params    faqify.GenerationParams
	maxLength int
}

// Option configures a Generator.
type Option func(*Generator)

// WithDocumentReader enables PDF documents.
func WithDocumentReader(r faqify.DocumentReader) Option {
	return func(g *Generator) {
		g.documents = r
	}
}

// WithMetaReader supplies page descriptions and fills in titles the
// extractor could not find.
func WithMetaReader(m faqify.MetaReader) Option {
	return func(g *Generator) {
		g.meta = m
	}
}

// WithTokenCounter records the prompt size in each Result.
func WithTokenCounter(tc faqify.TokenCounter) Option {
	return func(g *Generator) {
		g.tokens = tc
	}
}

// WithParams sets the completion parameters.
func WithParams(p faqify.GenerationParams) Option {
	return func(g *Generator) {
		g.params = p
	}
}

// WithMaxContentLength bounds the content placed in the prompt.
func WithMaxContentLength(n int) Option {
	return func(g *Generator) {
		g.maxLength = n
	}
}

// NewGenerator creates a Generator.
func NewGenerator(fetcher faqify.Fetcher, extractor faqify.Extractor, completer faqify.Completer, opts ...Option) *Generator {
	g := &Generator{
		fetcher:   fetcher,
		extractor: extractor,
		completer: completer,
		params:    faqify.DefaultGenerationParams(),
		maxLength: markup.DefaultMaxContentLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces exactly ClampCount(count) FAQs for src.
func (g *Generator) Generate(ctx context.Context, src faqify.Source, count int) (*faqify.Result, error) {
	count = faqify.ClampCount(count)
	if err := src.Validate(); err != nil {
		return nil, err
	}

	pg, err := g.content(ctx, src)
	if err != nil {
		return nil, err
	}
	content := markup.Truncate(pg.text, g.maxLength)
	if strings.TrimSpace(content) == "" {
		return nil, faqify.Errorf(faqify.EUNPROCESSABLE, "insufficient content")
	}

	prompt := BuildPrompt(faqify.GenerationRequest{
		Title:       pg.title,
		Description: pg.description,
		Content:     content,
		Count:       count,
	})

	var promptTokens int
	if g.tokens != nil {
		// Token counts are informational; a tokenizer failure does not fail
		// the generation.
		if n, err := g.tokens.CountTokens(ctx, prompt); err == nil {
			promptTokens = n
		}
	}

	completion, err := g.completer.Complete(ctx, prompt, g.params)
	if err != nil {
		return nil, err
	}

	records, mode := ParseResponse(completion)
	faqs, err := Reconcile(records, count, content)
	if err != nil {
		return nil, err
	}

	return &faqify.Result{
		FAQs:          faqs,
		Title:         pg.title,
		Method:        pg.method,
		ParseMode:     mode,
		Synthesized:   max(count-len(records), 0),
		ContentHash:   ContentHash(content),
		ContentLength: len(content),
		PromptTokens:  promptTokens,
	}, nil
}

// page is the text obtained from a source with what is known about it.
type page struct {
	title       string
	description string
	text        string
	method      string
}

// content returns the text, title and extraction method for src.
func (g *Generator) content(ctx context.Context, src faqify.Source) (*page, error) {
	switch src.Kind {
	case faqify.SourceURL:
		html, err := g.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			return nil, err
		}
		return g.readHTML(ctx, html)
	case faqify.SourceText:
		return &page{text: strings.TrimSpace(src.Text), method: MethodText}, nil
	case faqify.SourceDocument:
		return g.readDocument(ctx, src.Document)
	default:
		return nil, faqify.Errorf(faqify.EINVALID, "unknown source kind %q", src.Kind)
	}
}

// readHTML extracts the main text of html. Page metadata supplies the
// description and any title the extractor could not find; metadata errors
// are ignored.
func (g *Generator) readHTML(ctx context.Context, html string) (*page, error) {
	ext, err := g.extract(ctx, html)
	if err != nil {
		return nil, err
	}
	pg := &page{title: ext.Title, text: ext.Text, method: ext.Method}
	if g.meta != nil {
		if meta, err := g.meta.ReadMeta(html); err == nil {
			if pg.title == "" {
				pg.title = meta.Title
			}
			pg.description = meta.Description
		}
	}
	return pg, nil
}

// extract runs the extractor and stops waiting for it once ctx is done.
// Extractors take no context, so an abandoned run finishes in the
// background and its result is discarded.
func (g *Generator) extract(ctx context.Context, html string) (*faqify.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type extraction struct {
		ext *faqify.Extraction
		err error
	}
	done := make(chan extraction, 1)
	go func() {
		ext, err := g.extractor.Extract(html)
		done <- extraction{ext, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.ext, r.err
	}
}

// ContentHash computes a hash of the content using xxhash.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
