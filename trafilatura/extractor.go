package trafilatura

import (
	"bytes"
	"strings"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/markup"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements faqify.Extractor at compile time.
var _ faqify.Extractor = (*Extractor)(nil)

// Method is the extraction method reported for trafilatura results.
const Method = "trafilatura"

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	conv      faqify.Converter
	minLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter renders the content node through conv instead of using
// trafilatura's plain-text rendering.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, faqify.Errorf(faqify.EUNPROCESSABLE, "trafilatura failed").WithDetails("%v", err)
	}

	text := result.ContentText
	if e.conv != nil && result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		if md, err := e.conv.Convert(contentHTML); err == nil {
			text = md
		}
	}
	text = strings.TrimSpace(text)
	if len([]rune(text)) < e.minLength {
		return nil, faqify.Errorf(faqify.EUNPROCESSABLE, "insufficient content")
	}

	return &faqify.Extraction{
		Title:  strings.TrimSpace(result.Metadata.Title),
		Text:   text,
		Method: Method,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
