package batch_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSources(t *testing.T) {
	t.Parallel()

	files := map[string][]byte{
		"notes/report.pdf": []byte("%PDF-1.4"),
	}
	readFile := func(path string) ([]byte, error) {
		if data, ok := files[path]; ok {
			return data, nil
		}
		return nil, errors.New("not found")
	}

	input := `# news to process
https://example.com/news/a

notes/report.pdf
example.org/story
HTTP://EXAMPLE.NET/x
`

	sources, err := batch.ReadSources(strings.NewReader(input), readFile)

	require.NoError(t, err)
	require.Len(t, sources, 4)
	assert.Equal(t, faqify.NewURLSource("https://example.com/news/a"), sources[0])
	assert.Equal(t, faqify.SourceDocument, sources[1].Kind)
	assert.Equal(t, "report.pdf", sources[1].Document.Name)
	assert.Equal(t, []byte("%PDF-1.4"), sources[1].Document.Data)
	assert.Equal(t, "https://example.org/story", sources[2].URL)
	assert.Equal(t, "HTTP://EXAMPLE.NET/x", sources[3].URL)
}

func TestKey(t *testing.T) {
	t.Parallel()

	t.Run("normalizes urls", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			batch.Key(faqify.NewURLSource("https://example.com")),
			batch.Key(faqify.NewURLSource("HTTPS://Example.COM/#top")),
		)
		assert.NotEqual(t,
			batch.Key(faqify.NewURLSource("https://example.com/a")),
			batch.Key(faqify.NewURLSource("https://example.com/b")),
		)
	})

	t.Run("hashes text and documents by content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, batch.Key(faqify.NewTextSource("x")), batch.Key(faqify.NewTextSource("x")))
		assert.NotEqual(t, batch.Key(faqify.NewTextSource("x")), batch.Key(faqify.NewTextSource("y")))
		assert.Equal(t,
			batch.Key(faqify.NewDocumentSource([]byte("data"), "", "a.txt")),
			batch.Key(faqify.NewDocumentSource([]byte("data"), "text/plain", "b.txt")),
		)
		assert.NotEqual(t, batch.Key(faqify.NewTextSource("data")), batch.Key(faqify.NewDocumentSource([]byte("data"), "", "")))
	})
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	sources := []faqify.Source{
		faqify.NewURLSource("https://example.com/a"),
		faqify.NewTextSource("t"),
		faqify.NewURLSource("https://example.com/a#x"),
		faqify.NewURLSource("https://example.com/b"),
	}

	got := batch.Dedupe(sources)

	require.Len(t, got, 3)
	assert.Equal(t, "https://example.com/a", got[0].URL)
	assert.Equal(t, "t", got[1].Text)
	assert.Equal(t, "https://example.com/b", got[2].URL)
}

func TestTruncateSource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://x.com", batch.TruncateSource("https://x.com", 50))
	result := batch.TruncateSource("https://example.com/very/long/path/to/the/story", 20)
	assert.Equal(t, "...path/to/the/story", result)
	assert.Len(t, result, 20)
	assert.Equal(t, "", batch.TruncateSource("abc", 0))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~500 tokens", batch.FormatTokens(500))
	assert.Equal(t, "~10k tokens", batch.FormatTokens(10000))
	assert.Equal(t, "~2k tokens", batch.FormatTokens(1500))
}
