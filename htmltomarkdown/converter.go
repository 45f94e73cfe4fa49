package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/ldino3121/faqify"
)

// Ensure Converter implements faqify.Converter at compile time.
var _ faqify.Converter = (*Converter)(nil)

var (
	imageRe     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Converter wraps html-to-markdown to convert HTML to Markdown.
//
// Link targets and images carry no meaning for question generation, so by
// default links are reduced to their text and images are dropped.
type Converter struct {
	conv      *converter.Converter
	keepLinks bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLinks keeps Markdown link syntax and images in the output.
func WithLinks() Option {
	return func(c *Converter) {
		c.keepLinks = true
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	c := &Converter{conv: conv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", faqify.Errorf(faqify.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	if !c.keepLinks {
		result = imageRe.ReplaceAllString(result, "")
		result = linkRe.ReplaceAllString(result, "$1")
	}
	result = blankRunsRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result), nil
}
