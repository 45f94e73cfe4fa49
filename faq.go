package faqify

import (
	"context"
	"strconv"
	"strings"
)

// Bounds for the number of FAQs a caller may request.
const (
	MinCount     = 3
	MaxCount     = 10
	DefaultCount = 5
)

// FAQ is a single question/answer pair. Ordering of FAQs is display order.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate returns an error if the FAQ is missing a question or an answer.
func (f *FAQ) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return Errorf(EINVALID, "faq question required")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return Errorf(EINVALID, "faq answer required")
	}
	return nil
}

// ClampCount restricts n to [MinCount, MaxCount].
func ClampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// ParseCount converts a caller-supplied count to a valid one.
// Non-numeric input yields DefaultCount; numbers are clamped.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultCount
	}
	return ClampCount(n)
}

// GenerationRequest is the input to the prompt builder.
type GenerationRequest struct {
	// Title of the source, if known.
	Title string

	// Description is the page's own summary, if it has one.
	Description string

	// Content is the cleaned source text, already bounded in length.
	Content string

	// Count is the number of FAQs to request, within [MinCount, MaxCount].
	Count int
}

// ParseMode records which response parser strategy produced the records.
type ParseMode string

// Parse modes. Anything other than ParseJSON is a fallback.
const (
	ParseJSON        ParseMode = "json"
	ParseText        ParseMode = "text"
	ParsePlaceholder ParseMode = "placeholder"
)

// Result is the outcome of a generation.
type Result struct {
	// FAQs holds exactly the requested number of records.
	FAQs []FAQ `json:"faqs"`

	Title string `json:"title,omitempty"`

	// Method names the extraction method that produced the content,
	// e.g. "article<tag>" or "sentences".
	Method string `json:"method,omitempty"`

	ParseMode ParseMode `json:"parseMode"`

	// Synthesized is the number of FAQs added by count reconciliation.
	Synthesized int `json:"synthesized"`

	ContentHash   string `json:"contentHash,omitempty"`
	ContentLength int    `json:"contentLength"`
	PromptTokens  int    `json:"promptTokens,omitempty"`
}

// Generator produces FAQs from a source.
type Generator interface {
	// Generate returns exactly count FAQs for the source, where count is
	// clamped to [MinCount, MaxCount]. Errors carry fetch, extraction or
	// generation codes.
	Generate(ctx context.Context, src Source, count int) (*Result, error)
}
