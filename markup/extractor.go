package markup

import (
	"strings"

	"github.com/ldino3121/faqify"
)

// Ensure Extractor implements faqify.Extractor at compile time.
var _ faqify.Extractor = (*Extractor)(nil)

// Extractor combines cleaning, candidate extraction, scoring and fallback.
type Extractor struct {
	cleaner   *Cleaner
	scorer    *Scorer
	selectors []Selector
	maxLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithKeywords sets the noise, author and topic keyword lists.
func WithKeywords(kw Keywords) Option {
	return func(e *Extractor) {
		kw = kw.merge()
		minScore := e.scorer.MinScore
		e.cleaner = NewCleaner(kw.Noise)
		e.scorer = NewScorer(kw)
		e.scorer.MinScore = minScore
	}
}

// WithMinScore sets the floor a candidate score must exceed.
func WithMinScore(score int) Option {
	return func(e *Extractor) {
		e.scorer.MinScore = score
	}
}

// WithSelectors replaces the prioritized selector list.
func WithSelectors(selectors []Selector) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// WithMaxContentLength bounds the length of the raw fallback text.
func WithMaxContentLength(n int) Option {
	return func(e *Extractor) {
		e.maxLength = n
	}
}

// NewExtractor creates an Extractor with the news-domain defaults.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		cleaner:   NewCleaner(nil),
		scorer:    NewScorer(Keywords{}),
		selectors: DefaultSelectors(),
		maxLength: DefaultMaxContentLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*faqify.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, faqify.Errorf(faqify.EINVALID, "empty HTML input")
	}

	result := &faqify.Extraction{Title: pageTitle(rawHTML)}

	cleaned := e.cleaner.Clean(rawHTML)
	if best, ok := e.scorer.Select(ExtractCandidatesWith(cleaned, e.selectors)); ok {
		result.Text = best.Text
		result.Method = best.Selector
		result.Score = best.Score
		return result, nil
	}

	text, method, err := Fallback(cleaned, rawHTML, e.scorer, e.maxLength)
	if err != nil {
		return nil, err
	}
	result.Text = text
	result.Method = method
	return result, nil
}

// pageTitle returns the document title, or the first h1 when there is none.
func pageTitle(html string) string {
	if title := firstElementText(html, "title"); title != "" {
		return title
	}
	return firstElementText(html, "h1")
}
