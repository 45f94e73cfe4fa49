package faqify

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown suitable for a prompt.
	// The input should be main-content HTML, e.g. from a library Extractor.
	Convert(html string) (string, error)
}
