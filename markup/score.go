package markup

import (
	"sort"
	"strings"
)

// Scoring weights.
const (
	authorPenalty      = 20
	authorRepeatWeight = 1
	topicBonus         = 10
	topicRepeatWeight  = 2
	maxLengthBonus     = 30
	sentenceWeight     = 2
	maxSentenceBonus   = 20
	primaryBonus       = 25
	secondaryBonus     = 10

	targetMinLength = 500
	targetMaxLength = 5000
)

// DefaultMinScore accepts almost any candidate.
const DefaultMinScore = -1000

// Scorer ranks content candidates.
type Scorer struct {
	// MinScore is the floor a candidate score must exceed to be accepted.
	MinScore int

	// MinLength is the shortest accepted candidate text.
	MinLength int

	author [][]string
	topic  [][]string
}

// NewScorer returns a Scorer for the given keyword lists.
// Nil lists select the defaults.
func NewScorer(kw Keywords) *Scorer {
	kw = kw.merge()
	return &Scorer{
		MinScore:  DefaultMinScore,
		MinLength: MinCandidateLength,
		author:    compileKeywords(kw.Author),
		topic:     compileKeywords(kw.Topic),
	}
}

// compileKeywords splits each keyword into word tokens so that it matches
// on word boundaries, case-insensitively.
func compileKeywords(keywords []string) [][]string {
	out := make([][]string, 0, len(keywords))
	for _, kw := range keywords {
		if toks := words(kw); len(toks) > 0 {
			out = append(out, toks)
		}
	}
	return out
}

// words splits s into lowercase runs of ASCII letters, digits and
// underscores.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_'
	})
}

// wordIndex maps each word of a text to its positions.
type wordIndex struct {
	words []string
	at    map[string][]int
}

func newWordIndex(text string) wordIndex {
	idx := wordIndex{words: words(text), at: make(map[string][]int)}
	for i, w := range idx.words {
		idx.at[w] = append(idx.at[w], i)
	}
	return idx
}

// count returns the number of occurrences of the word sequence.
func (idx wordIndex) count(phrase []string) int {
	n := 0
	for _, i := range idx.at[phrase[0]] {
		if i+len(phrase) > len(idx.words) {
			continue
		}
		match := true
		for j := 1; j < len(phrase); j++ {
			if idx.words[i+j] != phrase[j] {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}

// Score returns the additive content score of text found by a selector of
// the given tier.
func (s *Scorer) Score(text string, tier Tier) int {
	return s.KeywordScore(text) + lengthBonus(length(text)) + sentenceBonus(text) + tierBonus(tier)
}

// KeywordScore returns the topic bonus minus the author penalty. Each
// distinct keyword carries a fixed weight and every further occurrence adds
// a small increment, so the penalty grows with the number of distinct
// author terms rather than with raw repetition.
func (s *Scorer) KeywordScore(text string) int {
	idx := newWordIndex(text)
	score := 0
	for _, kw := range s.topic {
		if n := idx.count(kw); n > 0 {
			score += topicBonus + (n-1)*topicRepeatWeight
		}
	}
	for _, kw := range s.author {
		if n := idx.count(kw); n > 0 {
			score -= authorPenalty + (n-1)*authorRepeatWeight
		}
	}
	return score
}

// lengthBonus ramps up to the maximum at targetMinLength, holds until
// targetMaxLength and then loses 5 points per started 1000 characters.
func lengthBonus(n int) int {
	switch {
	case n <= 0:
		return 0
	case n < targetMinLength:
		return n * maxLengthBonus / targetMinLength
	case n <= targetMaxLength:
		return maxLengthBonus
	}
	over := (n - targetMaxLength + 999) / 1000
	return max(maxLengthBonus-5*over, 0)
}

// sentenceBonus stops counting once the bonus is capped.
func sentenceBonus(text string) int {
	limit := maxSentenceBonus / sentenceWeight
	n := 0
	for rest := text; n < limit; {
		loc := sentenceRe.FindStringIndex(rest)
		if loc == nil {
			break
		}
		if strings.TrimSpace(rest[loc[0]:loc[1]]) != "" {
			n++
		}
		rest = rest[loc[1]:]
	}
	return n * sentenceWeight
}

func tierBonus(t Tier) int {
	switch t {
	case Primary:
		return primaryBonus
	case Secondary:
		return secondaryBonus
	default:
		return 0
	}
}

// Rank scores every candidate and returns them best first. Ties are broken
// by tier and then by discovery order. The input is not modified.
func (s *Scorer) Rank(cands []Candidate) []Candidate {
	ranked := make([]Candidate, len(cands))
	copy(ranked, cands)
	for i := range ranked {
		ranked[i].Score = s.Score(ranked[i].Text, ranked[i].Tier)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.Order < b.Order
	})
	return ranked
}

// Select returns the highest ranked candidate if it clears the acceptance
// threshold.
func (s *Scorer) Select(cands []Candidate) (Candidate, bool) {
	ranked := s.Rank(cands)
	if len(ranked) == 0 {
		return Candidate{}, false
	}
	best := ranked[0]
	if best.Score <= s.MinScore || length(best.Text) < s.MinLength {
		return Candidate{}, false
	}
	return best, true
}
