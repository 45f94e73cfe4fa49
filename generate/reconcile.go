package generate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ldino3121/faqify"
)

// variations turn a topic into a follow-up question.
var variations = []string{
	"What should readers know about %s?",
	"Why does %s matter?",
	"What are the key facts about %s?",
	"How does %s affect people?",
	"What happens next with %s?",
}

// genericPool is used when variations cannot fill the request.
var genericPool = []faqify.FAQ{
	{Question: "What is the main topic of this content?", Answer: "The content covers the subject described in the questions above."},
	{Question: "What are the key takeaways?", Answer: "The key points are summarized in the answers above."},
	{Question: "Who is this content relevant for?", Answer: "It is relevant for anyone following this subject."},
	{Question: "Where can I learn more about this topic?", Answer: "The original source provides the full details."},
	{Question: "What background helps to understand this content?", Answer: "No special background is needed; the answers above explain the essentials."},
	{Question: "What are the most important details to remember?", Answer: "The most important details are covered in the answers above."},
}

// maxSuffix bounds the numeric suffixes tried on the generic pool before
// falling back to numbered placeholders.
const maxSuffix = 20

// leadingWords are stripped from a question before its topic is taken.
var leadingWords = map[string]bool{
	"what": true, "who": true, "whom": true, "whose": true, "when": true,
	"where": true, "why": true, "how": true, "which": true,
	"is": true, "are": true, "was": true, "were": true, "am": true,
	"do": true, "does": true, "did": true, "can": true, "could": true,
	"should": true, "would": true, "will": true, "shall": true, "may": true,
	"might": true, "must": true, "has": true, "have": true, "had": true,
}

var wordTrimRe = regexp.MustCompile(`^[^\pL\pN]+|[^\pL\pN]+$`)

// Reconcile returns exactly count FAQs. Longer inputs are truncated to their
// first count records. Shorter inputs are padded, first with variations on
// the topics of existing questions, answered from the source content when a
// sentence mentions the topic, then from a fixed pool of neutral questions,
// numbered when they repeat. Padded questions never repeat an existing
// question case-insensitively. The records slice is not modified. An empty
// records slice is an ENOFAQS error.
func Reconcile(records []faqify.FAQ, count int, source string) ([]faqify.FAQ, error) {
	if len(records) == 0 {
		return nil, faqify.Errorf(faqify.ENOFAQS, "no FAQs could be generated")
	}
	if count < 1 {
		return nil, faqify.Errorf(faqify.EINVALID, "count must be positive, got %d", count)
	}

	if len(records) >= count {
		out := make([]faqify.FAQ, count)
		copy(out, records[:count])
		return out, nil
	}

	out := make([]faqify.FAQ, len(records), count)
	copy(out, records)
	seen := make(map[string]bool, count)
	for _, f := range records {
		seen[questionKey(f.Question)] = true
	}
	add := func(f faqify.FAQ) bool {
		key := questionKey(f.Question)
		if seen[key] {
			return false
		}
		seen[key] = true
		out = append(out, f)
		return true
	}

	sentences := splitSentences(source)
	n := len(records)
	for k := 0; k < n*len(variations) && len(out) < count; k++ {
		base := records[k%n]
		topic := Topic(base.Question)
		if topic == "" {
			continue
		}
		add(faqify.FAQ{
			Question: fmt.Sprintf(variations[(k/n)%len(variations)], topic),
			Answer:   topicAnswer(topic, sentences, base.Answer),
		})
	}

	for round := 1; round <= maxSuffix && len(out) < count; round++ {
		for _, f := range genericPool {
			if len(out) == count {
				break
			}
			if round > 1 {
				f.Question = fmt.Sprintf("%s (%d)", f.Question, round)
			}
			add(f)
		}
	}

	for i := len(out) + 1; len(out) < count; i++ {
		add(faqify.FAQ{
			Question: fmt.Sprintf("Additional question %d", i),
			Answer:   "Please refer to the original content for more details.",
		})
	}

	return out, nil
}

// Topic returns the first three words of a question after leading
// interrogative and auxiliary words and the trailing question mark are
// removed.
func Topic(question string) string {
	words := strings.Fields(strings.TrimRight(strings.TrimSpace(question), "?"))
	for len(words) > 0 && leadingWords[strings.ToLower(wordTrimRe.ReplaceAllString(words[0], ""))] {
		words = words[1:]
	}
	if len(words) > 3 {
		words = words[:3]
	}
	for i, w := range words {
		words[i] = wordTrimRe.ReplaceAllString(w, "")
	}
	return strings.Join(strings.Fields(strings.Join(words, " ")), " ")
}

// topicAnswer quotes the first source sentence that mentions every word of
// topic, or else the first sentence of the fallback answer.
func topicAnswer(topic string, sentences []string, fallback string) string {
	words := strings.Fields(strings.ToLower(topic))
	for _, s := range sentences {
		lower := strings.ToLower(s)
		all := true
		for _, w := range words {
			if !strings.Contains(lower, w) {
				all = false
				break
			}
		}
		if all {
			return s
		}
	}
	if first := splitSentences(fallback); len(first) > 0 {
		return first[0]
	}
	return fallback
}

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceRe.FindAllString(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func questionKey(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
