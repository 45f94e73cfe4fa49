package generate

import (
	"context"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ldino3121/faqify"
)

// Document content kinds.
const (
	MethodText = "text"
	MethodPDF  = "pdf"
)

// DocumentType returns the media type of doc without parameters. Empty or
// generic declared types are replaced by the type sniffed from the data.
func DocumentType(doc *faqify.Document) string {
	declared := mediaType(doc.MIMEType)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mediaType(mimetype.Detect(doc.Data).String())
}

func mediaType(s string) string {
	if s == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		mt, _, _ = strings.Cut(s, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// readDocument returns the text and method for an uploaded document.
func (g *Generator) readDocument(ctx context.Context, doc *faqify.Document) (*page, error) {
	switch mt := DocumentType(doc); mt {
	case "text/plain", "text/markdown", "text/x-markdown", "text/csv":
		return &page{text: strings.TrimSpace(string(doc.Data)), method: MethodText}, nil
	case "text/html", "application/xhtml+xml":
		return g.readHTML(ctx, string(doc.Data))
	case "application/pdf":
		if g.documents == nil {
			return nil, faqify.Errorf(faqify.EINVALID, "pdf documents are not supported")
		}
		text, err := g.documents.ReadText(doc.Data)
		if err != nil {
			return nil, err
		}
		return &page{text: text, method: MethodPDF}, nil
	default:
		return nil, faqify.Errorf(faqify.EINVALID, "unsupported document type %q", mt)
	}
}
