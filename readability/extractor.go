package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/markup"
)

// Ensure Extractor implements faqify.Extractor at compile time.
var _ faqify.Extractor = (*Extractor)(nil)

// Method is the extraction method reported for readability results.
const Method = "readability"

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	conv      faqify.Converter
	minLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter renders the article HTML through conv instead of using
// readability's plain-text rendering.
func WithConverter(conv faqify.Converter) Option {
	return func(e *Extractor) {
		e.conv = conv
	}
}

// WithMinLength sets the minimum length of usable text.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		e.minLength = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{minLength: markup.MinFallbackLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*faqify.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, faqify.Errorf(faqify.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, faqify.Errorf(faqify.EUNPROCESSABLE, "readability failed").WithDetails("%v", err)
	}

	text := article.TextContent
	if e.conv != nil && strings.TrimSpace(article.Content) != "" {
		if md, err := e.conv.Convert(article.Content); err == nil {
			text = md
		}
	}
	text = strings.TrimSpace(text)
	if len([]rune(text)) < e.minLength {
		return nil, faqify.Errorf(faqify.EUNPROCESSABLE, "insufficient content")
	}

	return &faqify.Extraction{
		Title:  strings.TrimSpace(article.Title),
		Text:   text,
		Method: Method,
	}, nil
}
