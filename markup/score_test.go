package markup_test

import (
	"strings"
	"testing"

	"github.com/ldino3121/faqify/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withKeyword embeds n occurrences of kw inside a single sentence of neutral
// prose so that length and sentence bonuses stay constant.
func withKeyword(kw string, n int) string {
	return "Filler words " + strings.Repeat(kw+" ", n) + "and " + paragraph(800)
}

func TestScorer_Monotonic(t *testing.T) {
	t.Parallel()

	s := markup.NewScorer(markup.Keywords{})

	t.Run("topic occurrences increase score", func(t *testing.T) {
		t.Parallel()

		prev := s.Score(withKeyword("government", 0), markup.Primary)
		for n := 1; n <= 5; n++ {
			score := s.Score(withKeyword("government", n), markup.Primary)
			assert.Greater(t, score, prev, "occurrences: %d", n)
			prev = score
		}
	})

	t.Run("author occurrences decrease score", func(t *testing.T) {
		t.Parallel()

		prev := s.Score(withKeyword("graduated", 0), markup.Primary)
		for n := 1; n <= 5; n++ {
			score := s.Score(withKeyword("graduated", n), markup.Primary)
			assert.Less(t, score, prev, "occurrences: %d", n)
			prev = score
		}
	})
}

func TestScorer_KeywordScore(t *testing.T) {
	t.Parallel()

	s := markup.NewScorer(markup.Keywords{Author: []string{"graduated", "university"}, Topic: []string{"budget"}})

	t.Run("distinct author keywords dominate repetition", func(t *testing.T) {
		t.Parallel()

		distinct := s.KeywordScore("She graduated from the university.")
		repeated := s.KeywordScore("She graduated, graduated, graduated.")

		assert.Equal(t, -40, distinct)
		assert.Equal(t, -22, repeated)
	})

	t.Run("matches on word boundaries case-insensitively", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 10, s.KeywordScore("The BUDGET passed."))
		assert.Equal(t, 0, s.KeywordScore("The budgetary office."))
	})
}

func TestScorer_LengthAndTier(t *testing.T) {
	t.Parallel()

	s := markup.NewScorer(markup.Keywords{Author: []string{}, Topic: []string{}})

	flat := s.Score(paragraph(2000), markup.Secondary)
	long := s.Score(paragraph(9000), markup.Secondary)
	primary := s.Score(paragraph(2000), markup.Primary)

	assert.Less(t, long, flat)
	assert.Equal(t, 15, primary-flat)
}

func TestScorer_Select(t *testing.T) {
	t.Parallel()

	s := markup.NewScorer(markup.Keywords{})

	t.Run("picks highest score", func(t *testing.T) {
		t.Parallel()

		cands := []markup.Candidate{
			{Text: paragraph(300), Selector: "content<class>", Tier: markup.Secondary, Order: 0},
			{Text: withKeyword("government", 2), Selector: "article<tag>", Tier: markup.Primary, Order: 1},
		}

		best, ok := s.Select(cands)

		require.True(t, ok)
		assert.Equal(t, "article<tag>", best.Selector)
		assert.NotZero(t, best.Score)
	})

	t.Run("breaks ties by discovery order", func(t *testing.T) {
		t.Parallel()

		text := paragraph(600)
		cands := []markup.Candidate{
			{Text: text, Selector: "post<class>", Tier: markup.Secondary, Order: 0},
			{Text: text, Selector: "content<class>", Tier: markup.Secondary, Order: 1},
		}

		best, ok := s.Select(cands)

		require.True(t, ok)
		assert.Equal(t, "post<class>", best.Selector)
	})

	t.Run("does not modify input", func(t *testing.T) {
		t.Parallel()

		cands := []markup.Candidate{{Text: paragraph(300), Selector: "main<tag>", Tier: markup.Primary}}

		_, _ = s.Select(cands)

		assert.Zero(t, cands[0].Score)
	})

	t.Run("rejects below floor", func(t *testing.T) {
		t.Parallel()

		strict := markup.NewScorer(markup.Keywords{})
		strict.MinScore = 1000

		_, ok := strict.Select([]markup.Candidate{{Text: paragraph(600), Tier: markup.Primary}})

		assert.False(t, ok)
	})

	t.Run("rejects empty list", func(t *testing.T) {
		t.Parallel()

		_, ok := s.Select(nil)

		assert.False(t, ok)
	})
}
