// Package generate implements the FAQ pipeline: it obtains content from a
// source, builds a prompt, sends it to a completion service and repairs the
// response into exactly the requested number of FAQs.
package generate

import (
	"fmt"
	"strings"

	"github.com/ldino3121/faqify"
)

// BuildPrompt returns the completion prompt for req. The requested count is
// stated in the opening instruction, repeated mid-prompt and checked again
// at the end, and the output contract is a bare JSON array.
func BuildPrompt(req faqify.GenerationRequest) string {
	n := req.Count

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate exactly %d frequently asked questions (FAQs) with answers about the subject of the content below.\n\n", n)
	if req.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n\n", req.Title)
	}
	if req.Description != "" {
		fmt.Fprintf(&sb, "Summary: %s\n\n", req.Description)
	}
	sb.WriteString("<content>\n")
	sb.WriteString(req.Content)
	sb.WriteString("\n</content>\n\n")

	sb.WriteString("Requirements:\n")
	fmt.Fprintf(&sb, "- Write exactly %d question and answer pairs, no more and no fewer.\n", n)
	sb.WriteString("- Ask about the main subject matter only: events, facts, people involved in the story, causes and consequences.\n")
	sb.WriteString("- Do not ask or answer anything about the author, reporter, journalist or publication, including their biography, education, career or social media.\n")
	sb.WriteString("- Answer each question in one to three sentences using only information from the content.\n")
	sb.WriteString("- Do not repeat a question.\n\n")

	sb.WriteString("Output format: respond with a JSON array only, with no text before or after it and no code fences. ")
	sb.WriteString("Each element is an object with a \"question\" string and an \"answer\" string:\n")
	sb.WriteString(`[{"question": "...", "answer": "..."}]`)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Before responding, verify that the array contains exactly %d objects.", n)
	return sb.String()
}
