package readability_test

import (
	"strings"
	"testing"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/mock"
	"github.com/ldino3121/faqify/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleBody = `<p>The city council approved a new transit plan on Tuesday after months of public hearings and a lengthy review by the planning department.</p>
<p>The plan adds three bus routes, extends weekend service past midnight, and replaces the oldest vehicles in the fleet with electric models over five years.</p>
<p>Officials said fares will not change during the first phase, and riders can comment on the proposed routes until the end of the month.</p>`

func page(extra string) string {
	return `<!DOCTYPE html>
<html>
<head><title>Council Approves Transit Plan</title></head>
<body>
` + extra + `
<article><h1>Council Approves Transit Plan</h1>` + articleBody + `</article>
</body>
</html>`
}

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("  ")

	require.Error(t, err)
	assert.Equal(t, faqify.EINVALID, faqify.ErrorCode(err))
}

func TestExtractor_ExtractsTitleAndText(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	result, err := ext.Extract(page(""))

	require.NoError(t, err)
	assert.Equal(t, "Council Approves Transit Plan", result.Title)
	assert.Contains(t, result.Text, "three bus routes")
	assert.Equal(t, readability.Method, result.Method)
	assert.Zero(t, result.Score)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	result, err := ext.Extract(page(`<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>`))

	require.NoError(t, err)
	assert.NotContains(t, result.Text, "Home Nav Link")
	assert.NotContains(t, result.Text, "About Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := strings.Replace(page(""), "</body>", `<footer><p>Footer copyright text 2024</p></footer></body>`, 1)

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.Text, "Footer copyright text")
}

func TestExtractor_UsesConverter(t *testing.T) {
	t.Parallel()

	var got string
	conv := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			got = html
			return "converted markdown " + strings.Repeat("x", 120), nil
		},
	}

	ext := readability.NewExtractor(readability.WithConverter(conv))
	result, err := ext.Extract(page(""))

	require.NoError(t, err)
	assert.Contains(t, got, "three bus routes")
	assert.True(t, strings.HasPrefix(result.Text, "converted markdown"))
}

func TestExtractor_FallsBackToTextWhenConverterFails(t *testing.T) {
	t.Parallel()

	conv := &mock.Converter{
		ConvertFn: func(string) (string, error) {
			return "", faqify.Errorf(faqify.EINVALID, "boom")
		},
	}

	ext := readability.NewExtractor(readability.WithConverter(conv))
	result, err := ext.Extract(page(""))

	require.NoError(t, err)
	assert.Contains(t, result.Text, "three bus routes")
}

func TestExtractor_RejectsShortContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Short</title></head>
<body><article><p>Too little.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	_, err := ext.Extract(html)

	require.Error(t, err)
	assert.Equal(t, faqify.EUNPROCESSABLE, faqify.ErrorCode(err))
}

func TestExtractor_MinLengthIsConfigurable(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Short</title></head>
<body><article><p>Short but accepted content.</p></article></body>
</html>`

	ext := readability.NewExtractor(readability.WithMinLength(5))
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.Text, "Short but accepted")
}
