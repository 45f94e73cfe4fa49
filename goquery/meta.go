// Package goquery reads page metadata from HTML with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ldino3121/faqify"
)

// Ensure MetaReader implements faqify.MetaReader at compile time.
var _ faqify.MetaReader = (*MetaReader)(nil)

// MetaReader reads page-level metadata: title and description.
// Open Graph and Twitter card tags are preferred over the document title
// because news sites often append the site name to <title>.
type MetaReader struct{}

// NewMetaReader creates a new MetaReader.
func NewMetaReader() *MetaReader {
	return &MetaReader{}
}

// ReadMeta parses html and returns its metadata.
func (m *MetaReader) ReadMeta(html string) (*faqify.PageMeta, error) {
	if strings.TrimSpace(html) == "" {
		return nil, faqify.Errorf(faqify.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, faqify.Errorf(faqify.EINVALID, "failed to parse HTML: %v", err)
	}

	return &faqify.PageMeta{
		Title: firstNonEmpty(
			m.metaContent(doc, "meta[property='og:title']"),
			m.metaContent(doc, "meta[name='twitter:title']"),
			m.text(doc, "head > title"),
			m.text(doc, "h1"),
		),
		Description: firstNonEmpty(
			m.metaContent(doc, "meta[name='description']"),
			m.metaContent(doc, "meta[property='og:description']"),
			m.metaContent(doc, "meta[name='twitter:description']"),
		),
	}, nil
}

// metaContent returns the content attribute of the first element matching
// the selector.
func (m *MetaReader) metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// text returns the collapsed text of the first element matching the selector.
func (m *MetaReader) text(doc *goquery.Document, selector string) string {
	return strings.Join(strings.Fields(doc.Find(selector).First().Text()), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
