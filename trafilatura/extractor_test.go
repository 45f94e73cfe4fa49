package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/mock"
	"github.com/ldino3121/faqify/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements faqify.Extractor at compile time.
var _ faqify.Extractor = (*trafilatura.Extractor)(nil)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Transit Plan Approved - City News</title>
<meta property="og:title" content="Council Approves Transit Plan">
</head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/politics">Politics</a></li>
</ul>
</nav>
<main>
<article>
<h1>Council Approves Transit Plan</h1>
<p>The city council approved a new transit plan on Tuesday after months of public hearings and a lengthy review by the planning department.</p>
<p>The plan adds three bus routes, extends weekend service past midnight, and replaces the oldest vehicles in the fleet with electric models over five years.</p>
<p>Officials said fares will not change during the first phase, and riders can comment on the proposed routes until the end of the month.</p>
</article>
</main>
<footer>
<p>Copyright 2024 Example News</p>
</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(articleHTML)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Equal(t, trafilatura.Method, result.Method)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(articleHTML)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "three bus routes")
		assert.Contains(t, result.Text, "fares will not change")
	})

	t.Run("removes navigation and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(articleHTML)

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "Politics")
		assert.NotContains(t, result.Text, "Copyright 2024 Example News")
	})

	t.Run("renders content through the converter", func(t *testing.T) {
		t.Parallel()

		var got string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "# Converted\n\n" + strings.Repeat("body ", 30), nil
			},
		}

		ext := trafilatura.NewExtractor(trafilatura.WithConverter(conv))
		result, err := ext.Extract(articleHTML)

		require.NoError(t, err)
		assert.Contains(t, got, "<p>")
		assert.True(t, strings.HasPrefix(result.Text, "# Converted"))
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, faqify.EINVALID, faqify.ErrorCode(err))
	})

	t.Run("rejects pages without enough content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Test</title></head><body><p>Hello</p></body></html>`

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(html)

		require.Error(t, err)
		assert.Equal(t, faqify.EUNPROCESSABLE, faqify.ErrorCode(err))
	})
}
