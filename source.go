package faqify

import (
	"net/url"
	"strings"
)

// SourceKind identifies which variant of a Source is populated.
type SourceKind string

// Source kinds.
const (
	SourceURL      SourceKind = "url"
	SourceText     SourceKind = "text"
	SourceDocument SourceKind = "document"
)

// Source is the content a set of FAQs is generated from.
// Exactly one of URL, Text or Document is populated, as named by Kind.
type Source struct {
	Kind     SourceKind
	URL      string
	Text     string
	Document *Document
}

// Document is an uploaded file.
type Document struct {
	// Name is the original file name, if known. Informational only.
	Name string

	// MIMEType is the declared content type. Empty or
	// application/octet-stream means the type is sniffed from Data.
	MIMEType string

	Data []byte
}

// NewURLSource returns a Source for a web page.
func NewURLSource(rawURL string) Source {
	return Source{Kind: SourceURL, URL: rawURL}
}

// NewTextSource returns a Source for pasted text.
func NewTextSource(text string) Source {
	return Source{Kind: SourceText, Text: text}
}

// NewDocumentSource returns a Source for an uploaded document.
func NewDocumentSource(data []byte, mimeType, name string) Source {
	return Source{Kind: SourceDocument, Document: &Document{Name: name, MIMEType: mimeType, Data: data}}
}

// Validate returns an error if the source is not exactly one well-formed variant.
func (s *Source) Validate() error {
	populated := 0
	if s.URL != "" {
		populated++
	}
	if s.Text != "" {
		populated++
	}
	if s.Document != nil {
		populated++
	}
	if populated != 1 {
		return Errorf(EINVALID, "exactly one of url, text or document required")
	}

	switch s.Kind {
	case SourceURL:
		if s.URL == "" {
			return Errorf(EINVALID, "source url required")
		}
		u, err := url.Parse(s.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Errorf(EINVALID, "source url must be an absolute http or https URL")
		}
	case SourceText:
		if strings.TrimSpace(s.Text) == "" {
			return Errorf(EINVALID, "source text required")
		}
	case SourceDocument:
		if s.Document == nil || len(s.Document.Data) == 0 {
			return Errorf(EINVALID, "source document required")
		}
	default:
		return Errorf(EINVALID, "unknown source kind %q", s.Kind)
	}
	return nil
}

// String returns a short human-readable label for the source.
func (s Source) String() string {
	switch s.Kind {
	case SourceURL:
		return s.URL
	case SourceDocument:
		if s.Document != nil && s.Document.Name != "" {
			return s.Document.Name
		}
		return "document"
	default:
		return "text"
	}
}

// NormalizeURL completes a user-supplied URL with a protocol when it lacks
// one ("example.com/page" becomes "https://example.com/page").
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return "https://" + raw
}
