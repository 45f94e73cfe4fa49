package markup

import (
	"sort"
	"strings"

	"github.com/ldino3121/faqify"
)

// Fallback method names, in the order they are tried.
const (
	MethodTitleParagraphs = "title-paragraphs"
	MethodSentences       = "sentences"
	MethodRaw             = "raw"
)

// Fallback limits.
const (
	MinFallbackLength = 100
	MinSentenceLength = 30
	maxParagraphs     = 8
	maxSentences      = 8
)

// DefaultMaxContentLength bounds the text handed to the prompt builder.
const DefaultMaxContentLength = 10000

// Fallback applies progressively cruder extraction when no candidate was
// accepted: the first heading with its following paragraphs, then the best
// scoring sentences of the cleaned document, then the tag-stripped original
// document truncated to maxLength. The first tier producing at least
// MinFallbackLength characters wins. When every tier fails an
// EUNPROCESSABLE error is returned.
func Fallback(cleaned, original string, s *Scorer, maxLength int) (text, method string, err error) {
	if text = titleParagraphs(cleaned, original); length(text) >= MinFallbackLength {
		return text, MethodTitleParagraphs, nil
	}
	if text = topSentences(StripTags(cleaned), s); length(text) >= MinFallbackLength {
		return text, MethodSentences, nil
	}
	if text = Truncate(StripTags(stripScripts(original)), maxLength); length(text) >= MinFallbackLength {
		return text, MethodRaw, nil
	}
	return "", "", faqify.Errorf(faqify.EUNPROCESSABLE, "insufficient content")
}

// titleParagraphs returns the first h1 followed by up to maxParagraphs of
// the paragraphs after it. When cleaning removed the heading (it commonly
// sits inside <header>), the first h1 of the original document anchors the
// paragraphs of the cleaned document instead.
func titleParagraphs(cleaned, original string) string {
	tags := scanTags(cleaned)
	ends := blockEnds(tags)
	heading, from := "", 0
	for i, t := range tags {
		if t.closing || t.name != "h1" {
			continue
		}
		if end := ends[i]; end >= 0 {
			heading, from = StripTags(cleaned[t.end:end]), i+1
			for from < len(tags) && tags[from].start < end {
				from++
			}
		}
		break
	}
	if heading == "" {
		heading = firstElementText(original, "h1")
	}
	if heading == "" {
		return ""
	}

	parts := []string{heading}
	for j := from; j < len(tags) && len(parts) <= maxParagraphs; j++ {
		p := tags[j]
		if p.closing || p.name != "p" {
			continue
		}
		end := ends[j]
		if end < 0 {
			continue
		}
		if text := StripTags(cleaned[p.end:end]); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, "\n\n")
}

// stripScripts removes scripts, styles and comments, leaving a space in
// their place.
func stripScripts(s string) string {
	s = removeElements(s, "script", " ")
	s = removeElements(s, "style", " ")
	return removeComments(s, " ")
}

// topSentences returns the best scoring sentences of text joined in score
// order. Sentences shorter than MinSentenceLength are ignored.
func topSentences(text string, s *Scorer) string {
	type scored struct {
		text  string
		score int
	}
	var sentences []scored
	for _, sent := range splitSentences(text) {
		if length(sent) < MinSentenceLength {
			continue
		}
		sentences = append(sentences, scored{text: sent, score: s.KeywordScore(sent)})
	}
	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].score > sentences[j].score
	})
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	parts := make([]string, len(sentences))
	for i, sent := range sentences {
		parts[i] = sent.text
	}
	return strings.Join(parts, " ")
}
