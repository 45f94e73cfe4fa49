package mock

import "github.com/ldino3121/faqify"

var _ faqify.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of faqify.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*faqify.Extraction, error)
}

func (e *Extractor) Extract(html string) (*faqify.Extraction, error) {
	return e.ExtractFn(html)
}

var _ faqify.MetaReader = (*MetaReader)(nil)

// MetaReader is a mock implementation of faqify.MetaReader.
type MetaReader struct {
	ReadMetaFn func(html string) (*faqify.PageMeta, error)
}

func (m *MetaReader) ReadMeta(html string) (*faqify.PageMeta, error) {
	return m.ReadMetaFn(html)
}

var _ faqify.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of faqify.DocumentReader.
type DocumentReader struct {
	ReadTextFn func(data []byte) (string, error)
}

func (r *DocumentReader) ReadText(data []byte) (string, error) {
	return r.ReadTextFn(data)
}
