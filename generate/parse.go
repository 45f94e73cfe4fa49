package generate

import (
	_ "embed"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/ldino3121/faqify"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed faq.schema.json
var faqSchema string

var schemaLoader = gojsonschema.NewStringLoader(faqSchema)

var (
	arrayRe    = regexp.MustCompile(`(?s)\[.*\]`)
	numberedRe = regexp.MustCompile(`^\d+[.)]\s*`)
	questionRe = regexp.MustCompile(`(?i)^(?:q\s*:|question(?:\s*\d+)?\s*[:.)-])\s*`)
	answerRe   = regexp.MustCompile(`(?i)^(?:a\s*:|answer(?:\s*\d+)?\s*[:.)-])\s*`)
)

// emphasis holds the markdown characters ignored around markers.
const emphasis = "*_#> \t"

// Placeholder is the single record returned when a response holds no
// recognizable FAQs.
var Placeholder = faqify.FAQ{
	Question: "What is this content about?",
	Answer:   "A summary could not be generated automatically. Please refer to the original content.",
}

// ParseResponse extracts FAQ records from a completion. It first decodes
// the outermost JSON array, tolerating surrounding prose and code fences,
// and falls back to a line-oriented parser for Q/A formatted text. It never
// fails: when nothing is recognized a single placeholder record is returned.
// The mode reports which strategy produced the records.
func ParseResponse(text string) ([]faqify.FAQ, faqify.ParseMode) {
	if faqs := parseJSON(text); len(faqs) > 0 {
		return faqs, faqify.ParseJSON
	}
	if faqs := parseText(text); len(faqs) > 0 {
		return faqs, faqify.ParseText
	}
	return []faqify.FAQ{Placeholder}, faqify.ParsePlaceholder
}

func parseJSON(text string) []faqify.FAQ {
	span := arrayRe.FindString(text)
	if span == "" {
		return nil
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(span))
	if err != nil || !result.Valid() {
		return nil
	}

	var raw []faqify.FAQ
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil
	}

	faqs := make([]faqify.FAQ, 0, len(raw))
	for _, f := range raw {
		f.Question = strings.TrimSpace(f.Question)
		f.Answer = strings.TrimSpace(f.Answer)
		if f.Question == "" || f.Answer == "" {
			continue
		}
		faqs = append(faqs, f)
	}
	return faqs
}

// textMode is the field unmarked lines are appended to.
type textMode int

const (
	inQuestion textMode = iota
	inAnswer
)

// parseText reads records from lines marked as questions ("1.", "Q:",
// "Question 1:") and answers ("A:", "Answer:"). A question marker starts a
// record; an answer marker switches it to its answer, even when nothing
// follows the marker on that line. Unmarked lines extend the active field.
// A question that already ends in "?" is complete, so an unmarked line after
// it starts the answer. Leading and trailing markdown emphasis is ignored.
func parseText(text string) []faqify.FAQ {
	var faqs []faqify.FAQ
	var q, a []string
	mode := inQuestion

	flush := func() {
		if len(q) > 0 && len(a) > 0 {
			faqs = append(faqs, faqify.FAQ{
				Question: strings.Join(q, " "),
				Answer:   strings.Join(a, " "),
			})
		}
		q, a = nil, nil
		mode = inQuestion
	}

	for _, line := range strings.Split(text, "\n") {
		line = unemphasize(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}

		if rest, ok := questionLine(line); ok {
			flush()
			if rest != "" {
				q = append(q, rest)
			}
			continue
		}
		if m := answerRe.FindString(line); m != "" {
			if len(q) == 0 {
				continue
			}
			mode = inAnswer
			if rest := unemphasize(line[len(m):]); rest != "" {
				a = append(a, rest)
			}
			continue
		}

		if len(q) == 0 {
			continue
		}
		if mode == inQuestion && strings.HasSuffix(q[len(q)-1], "?") {
			mode = inAnswer
		}
		if mode == inAnswer {
			a = append(a, line)
		} else {
			q = append(q, line)
		}
	}
	flush()
	return faqs
}

// questionLine reports whether line starts a question and returns the
// question text without markers.
func questionLine(line string) (string, bool) {
	matched := false
	if m := numberedRe.FindString(line); m != "" {
		line, matched = unemphasize(line[len(m):]), true
	}
	if m := questionRe.FindString(line); m != "" {
		line, matched = unemphasize(line[len(m):]), true
	}
	return line, matched
}

func unemphasize(s string) string {
	return strings.Trim(strings.TrimSpace(s), emphasis)
}
