// Package markup extracts the primary content of an HTML page by pattern
// matching on raw markup. No DOM is built. Tags are scanned once per pass
// and paired by name, noise elements are cut by index search and the best
// content candidate is chosen by a keyword-aware score.
package markup

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tagRe      = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9:-]*)([^>]*)>`)
	anyTagRe   = regexp.MustCompile(`(?s)<[^>]*>`)
	attrRe     = regexp.MustCompile(`(?i)(?:^|\s)([a-z][a-z0-9:-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)
)

// tag is an opening or closing tag found in raw markup.
type tag struct {
	start, end  int
	name        string
	closing     bool
	selfClosing bool
	attrs       []attribute
}

// attribute is a parsed tag attribute, name and value lowercased.
type attribute struct {
	name, value string
}

// attr returns the value of the named attribute, lowercased.
func (t tag) attr(name string) string {
	for _, a := range t.attrs {
		if a.name == name {
			return a.value
		}
	}
	return ""
}

// scanTags returns every tag in s in document order. Attributes of opening
// tags are parsed once here.
func scanTags(s string) []tag {
	matches := tagRe.FindAllStringSubmatchIndex(s, -1)
	tags := make([]tag, 0, len(matches))
	for _, m := range matches {
		t := tag{
			start:   m[0],
			end:     m[1],
			closing: m[3] > m[2],
			name:    strings.ToLower(s[m[4]:m[5]]),
		}
		if !t.closing {
			raw := s[m[6]:m[7]]
			t.selfClosing = strings.HasSuffix(strings.TrimSpace(raw), "/")
			t.attrs = parseAttrs(raw)
		}
		tags = append(tags, t)
	}
	return tags
}

func parseAttrs(raw string) []attribute {
	if strings.IndexByte(raw, '=') < 0 {
		return nil
	}
	var attrs []attribute
	for _, m := range attrRe.FindAllStringSubmatch(raw, -1) {
		attrs = append(attrs, attribute{
			name:  strings.ToLower(m[1]),
			value: strings.ToLower(m[2] + m[3] + m[4]),
		})
	}
	return attrs
}

// blockEnds returns, for every tag, the offset just past the close tag
// matching it, pairing tags of the same name innermost first. Closing tags
// and opening tags that are never closed get -1; self-closing tags end at
// themselves.
func blockEnds(tags []tag) []int {
	ends := make([]int, len(tags))
	open := make(map[string][]int)
	for i, t := range tags {
		ends[i] = -1
		switch {
		case t.closing:
			stack := open[t.name]
			if n := len(stack); n > 0 {
				ends[stack[n-1]] = t.end
				open[t.name] = stack[:n-1]
			}
		case t.selfClosing:
			ends[i] = t.end
		default:
			open[t.name] = append(open[t.name], i)
		}
	}
	return ends
}

// StripTags removes all markup from s, unescapes entities and collapses
// whitespace.
func StripTags(s string) string {
	s = anyTagRe.ReplaceAllString(s, " ")
	return collapse(html.UnescapeString(s))
}

// collapse replaces runs of ASCII whitespace with a single space and trims
// the ends.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpaceByte(c) {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// asciiLower lowercases ASCII letters only, so offsets into the result are
// valid offsets into s.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// element locates the first complete <name ...>...</name> element in lower,
// the ASCII-lowercased markup, at or after from. The body ends at the first
// close tag of the same name; nesting is not counted.
func element(lower, name string, from int) (start, bodyStart, bodyEnd, end int, ok bool) {
	open := "<" + name
	for from < len(lower) {
		i := strings.Index(lower[from:], open)
		if i < 0 {
			return 0, 0, 0, 0, false
		}
		start = from + i
		p := start + len(open)
		if p < len(lower) && isWordByte(lower[p]) {
			from = p
			continue
		}
		gt := strings.IndexByte(lower[p:], '>')
		if gt < 0 {
			return 0, 0, 0, 0, false
		}
		bodyStart = p + gt + 1
		bodyEnd, end = closeTag(lower, name, bodyStart)
		if end < 0 {
			return 0, 0, 0, 0, false
		}
		return start, bodyStart, bodyEnd, end, true
	}
	return 0, 0, 0, 0, false
}

// closeTag finds the first </name> at or after from, allowing whitespace
// before the '>'. It returns -1, -1 when there is none.
func closeTag(lower, name string, from int) (start, end int) {
	closing := "</" + name
	for {
		i := strings.Index(lower[from:], closing)
		if i < 0 {
			return -1, -1
		}
		start = from + i
		p := start + len(closing)
		for p < len(lower) && isSpaceByte(lower[p]) {
			p++
		}
		if p < len(lower) && lower[p] == '>' {
			return start, p + 1
		}
		from = start + len(closing)
	}
}

// firstElementText returns the tag-stripped body of the first complete
// element with the given name.
func firstElementText(html, name string) string {
	_, body, bodyEnd, _, ok := element(asciiLower(html), name, 0)
	if !ok {
		return ""
	}
	return StripTags(html[body:bodyEnd])
}

// removeElements deletes every complete element with the given name,
// pairing each opening tag with the first close tag after it, and writes
// repl in its place.
func removeElements(s, name, repl string) string {
	lower := asciiLower(s)
	var b strings.Builder
	last, removed := 0, false
	for {
		start, _, _, end, ok := element(lower, name, last)
		if !ok {
			break
		}
		if !removed {
			b.Grow(len(s))
			removed = true
		}
		b.WriteString(s[last:start])
		b.WriteString(repl)
		last = end
	}
	if !removed {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// removeComments deletes every complete <!-- --> comment.
func removeComments(s, repl string) string {
	var b strings.Builder
	last, removed := 0, false
	for {
		i := strings.Index(s[last:], "<!--")
		if i < 0 {
			break
		}
		start := last + i
		j := strings.Index(s[start+4:], "-->")
		if j < 0 {
			break
		}
		if !removed {
			b.Grow(len(s))
			removed = true
		}
		b.WriteString(s[last:start])
		b.WriteString(repl)
		last = start + 4 + j + 3
	}
	if !removed {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// splitSentences splits text on terminal punctuation, keeping the
// punctuation with its sentence.
func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceRe.FindAllString(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Truncate shortens s to at most n runes. Non-positive n disables truncation.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
