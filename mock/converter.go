package mock

import "github.com/ldino3121/faqify"

var _ faqify.Converter = (*Converter)(nil)

// Converter is a mock implementation of faqify.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
