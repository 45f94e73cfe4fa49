package markup

import "strings"

// Tier ranks a selector. Primary selectors name article bodies directly;
// secondary selectors name generic wrappers.
type Tier int

// Selector tiers.
const (
	Primary Tier = iota
	Secondary
)

func (t Tier) String() string {
	switch t {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// MinCandidateLength is the shortest text kept as a candidate.
const MinCandidateLength = 200

// Candidate is a block of text that may hold the main content.
type Candidate struct {
	Text string

	// Selector records where the block was found, e.g. "article<tag>" or
	// "post-content<class>".
	Selector string

	Tier  Tier
	Score int

	// Order is the discovery position, used to break ties.
	Order int
}

// Selector describes one entry of the prioritized selector list.
type Selector struct {
	Name string
	Tier Tier
}

// DefaultSelectors returns the selector list in priority order.
func DefaultSelectors() []Selector {
	var out []Selector
	for _, name := range []string{
		"article", "main", "[role=main]", "article-body", "article-content",
		"story-body", "entry-content", "post-content", "post-body",
	} {
		out = append(out, Selector{Name: name, Tier: Primary})
	}
	for _, name := range []string{
		"post", "content", "#main", "page-content", "main-content",
		"body-content", "text", "container", "wrapper",
	} {
		out = append(out, Selector{Name: name, Tier: Secondary})
	}
	return out
}

// strategy matches opening tags for one selector.
type strategy struct {
	label string
	match func(t tag) bool
}

func (s Selector) strategies() []strategy {
	name := strings.ToLower(s.Name)
	switch {
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		attr, value, _ := strings.Cut(strings.Trim(name, "[]"), "=")
		value = strings.Trim(value, `"'`)
		return []strategy{{
			label: attr,
			match: func(t tag) bool { return t.attr(attr) == value },
		}}
	case strings.HasPrefix(name, "#"):
		id := strings.TrimPrefix(name, "#")
		return []strategy{{
			label: "id",
			match: func(t tag) bool { return strings.Contains(t.attr("id"), id) },
		}}
	case strings.HasPrefix(name, "."):
		class := strings.TrimPrefix(name, ".")
		return []strategy{{
			label: "class",
			match: func(t tag) bool { return strings.Contains(t.attr("class"), class) },
		}}
	}
	return []strategy{
		{label: "tag", match: func(t tag) bool { return t.name == name }},
		{label: "class", match: func(t tag) bool { return strings.Contains(t.attr("class"), name) }},
		{label: "id", match: func(t tag) bool { return strings.Contains(t.attr("id"), name) }},
	}
}

// ExtractCandidates finds content candidates in cleaned HTML using the
// default selectors.
func ExtractCandidates(html string) []Candidate {
	return ExtractCandidatesWith(html, DefaultSelectors())
}

// ExtractCandidatesWith finds content candidates in cleaned HTML. For each
// selector and strategy only the largest matching block, measured in
// markup, is kept. Blocks with less than MinCandidateLength characters of
// text are discarded, as are blocks whose text duplicates an earlier
// candidate.
func ExtractCandidatesWith(html string, selectors []Selector) []Candidate {
	tags := scanTags(html)
	ends := blockEnds(tags)
	seen := make(map[string]bool)
	stripped := make(map[int]string)
	var out []Candidate

	for _, sel := range selectors {
		for _, st := range sel.strategies() {
			best, size := -1, 0
			for i, t := range tags {
				if t.closing || ends[i] < 0 || !st.match(t) {
					continue
				}
				if n := ends[i] - t.end; best < 0 || n > size {
					best, size = i, n
				}
			}
			if best < 0 {
				continue
			}
			text, ok := stripped[best]
			if !ok {
				text = StripTags(html[tags[best].end:ends[best]])
				stripped[best] = text
			}
			if length(text) < MinCandidateLength || seen[text] {
				continue
			}
			seen[text] = true
			out = append(out, Candidate{
				Text:     text,
				Selector: sel.Name + "<" + st.label + ">",
				Tier:     sel.Tier,
				Order:    len(out),
			})
		}
	}
	return out
}
