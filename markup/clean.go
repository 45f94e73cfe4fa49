package markup

import "strings"

// Noise elements are removed in full, open tag to the first close tag.
// Comments are removed between the two groups.
var (
	scriptElements = []string{"script", "style", "noscript"}
	chromeElements = []string{"nav", "header", "footer", "aside"}
)

// containerTags are the block elements eligible for keyword removal.
var containerTags = map[string]bool{
	"div": true, "section": true, "p": true, "ul": true,
	"ol": true, "figure": true, "span": true, "form": true,
}

func notAlnum(r rune) bool {
	return (r < 'a' || r > 'z') && (r < '0' || r > '9')
}

// Cleaner removes non-content markup from HTML.
type Cleaner struct {
	// Keywords are matched as substrings of the class and id attributes of
	// block containers. Keywords shorter than three characters are the
	// exception: they must match a whole token of the attribute value, so
	// "ad" matches "ad-slot" but not "header" or "download". This narrows
	// plain substring matching on purpose.
	Keywords []string
}

// NewCleaner returns a Cleaner using the given noise keywords.
// A nil slice selects the defaults.
func NewCleaner(keywords []string) *Cleaner {
	if keywords == nil {
		keywords = DefaultKeywords().Noise
	}
	lower := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			lower = append(lower, kw)
		}
	}
	return &Cleaner{Keywords: lower}
}

// Clean removes noise from html using the default keywords.
func Clean(html string) string {
	return defaultCleaner.Clean(html)
}

var defaultCleaner = NewCleaner(nil)

// Clean removes scripts, styles, comments, navigation chrome and keyword
// matched containers from html, repeating until nothing more can be removed,
// and collapses whitespace. The result is never longer than the input and
// cleaning it again returns it unchanged.
func (c *Cleaner) Clean(html string) string {
	s := html
	for {
		next := collapse(c.removeContainers(removeNoise(s)))
		if next == s {
			return s
		}
		s = next
	}
}

func removeNoise(s string) string {
	for {
		prev := s
		for _, name := range scriptElements {
			s = removeElements(s, name, "")
		}
		s = removeComments(s, "")
		for _, name := range chromeElements {
			s = removeElements(s, name, "")
		}
		if s == prev {
			return s
		}
	}
}

// removeContainers deletes every keyword matched container block in a
// single pass. Matches nested in a removed block go with it. An unclosed
// container loses only its opening tag.
func (c *Cleaner) removeContainers(s string) string {
	tags := scanTags(s)
	ends := blockEnds(tags)

	var b strings.Builder
	last, removed := 0, false
	for i, t := range tags {
		if t.start < last || t.closing || !containerTags[t.name] || !c.matches(t) {
			continue
		}
		end := ends[i]
		if end < 0 {
			end = t.end
		}
		if !removed {
			b.Grow(len(s))
			removed = true
		}
		b.WriteString(s[last:t.start])
		last = end
	}
	if !removed {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func (c *Cleaner) matches(t tag) bool {
	for _, name := range []string{"class", "id"} {
		v := t.attr(name)
		if v == "" {
			continue
		}
		for _, kw := range c.Keywords {
			if len(kw) < 3 {
				if hasToken(v, kw) {
					return true
				}
			} else if strings.Contains(v, kw) {
				return true
			}
		}
	}
	return false
}

func hasToken(v, kw string) bool {
	for _, tok := range strings.FieldsFunc(v, notAlnum) {
		if tok == kw {
			return true
		}
	}
	return false
}
