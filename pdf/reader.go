// Package pdf reads plain text from PDF documents using ledongthuc/pdf.
package pdf

import (
	"bytes"
	"strings"

	"github.com/ldino3121/faqify"
	"github.com/ledongthuc/pdf"
)

// Ensure Reader implements faqify.DocumentReader at compile time.
var _ faqify.DocumentReader = (*Reader)(nil)

// Reader extracts text from every page of a PDF.
type Reader struct {
	// MinLineLength drops shorter lines, which are mostly page numbers
	// and running headers.
	MinLineLength int
}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{MinLineLength: 3}
}

// ReadText returns the cleaned text of the document. Pages that fail to
// decode are skipped; a document with no readable text is EUNPROCESSABLE.
func (r *Reader) ReadText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", faqify.Errorf(faqify.EINVALID, "empty PDF document")
	}

	// The decoder panics on some malformed streams.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = faqify.Errorf(faqify.EUNPROCESSABLE, "unreadable PDF document").WithDetails("%v", rec)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", faqify.Errorf(faqify.EINVALID, "invalid PDF document").WithDetails("%v", err)
	}

	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n\n")
	}

	text = r.clean(b.String())
	if text == "" {
		return "", faqify.Errorf(faqify.EUNPROCESSABLE, "no text found in PDF document")
	}
	return text, nil
}

// clean trims lines and drops short ones, keeping a blank line between
// paragraphs.
func (r *Reader) clean(raw string) string {
	var lines []string
	blank := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			blank = len(lines) > 0
			continue
		}
		if len([]rune(line)) < r.MinLineLength {
			continue
		}
		if blank {
			lines = append(lines, "")
			blank = false
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
