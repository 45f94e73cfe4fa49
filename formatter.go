package faqify

import (
	"strconv"
	"strings"
)

// FormatFAQs renders FAQs as Markdown. The title, if non-empty, becomes a
// top-level heading; each question becomes a numbered second-level heading
// followed by its answer. FAQs are separated by blank lines.
func FormatFAQs(title string, faqs []FAQ) string {
	if len(faqs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(faqs)+1)
	if title != "" {
		parts = append(parts, "# "+title)
	}
	for i, f := range faqs {
		parts = append(parts, "## "+strconv.Itoa(i+1)+". "+f.Question+"\n"+f.Answer)
	}

	return strings.Join(parts, "\n\n")
}
