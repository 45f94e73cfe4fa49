package faqify

// Extraction holds the primary content extracted from an HTML page.
type Extraction struct {
	// Title is the page title, if one was found.
	Title string

	// Text is the plain-text main content with noise removed.
	Text string

	// Method names the selector or fallback tier that produced Text.
	Method string

	// Score is the content score of the selected candidate.
	// Zero for fallback tiers and library extractors.
	Score int
}

// Extractor extracts the main content from an HTML page, discarding
// navigation, ads and author biographies.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns EUNPROCESSABLE when no usable text can be found.
	Extract(html string) (*Extraction, error)
}

// PageMeta holds page-level metadata.
type PageMeta struct {
	Title       string
	Description string
}

// MetaReader reads page-level metadata from HTML.
type MetaReader interface {
	ReadMeta(html string) (*PageMeta, error)
}
