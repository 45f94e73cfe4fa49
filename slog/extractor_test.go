package slog_test

import (
	"bytes"
	"testing"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/mock"
	faqslog "github.com/ldino3121/faqify/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs method and score", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*faqify.Extraction, error) {
				return &faqify.Extraction{Title: "T", Text: "body text", Method: "article<tag>", Score: 42}, nil
			},
		}

		ext := faqslog.NewLoggingExtractor(inner, newDebugLogger(&buf))
		result, err := ext.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "body text", result.Text)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "method=article<tag>")
		assert.Contains(t, output, "score=42")
		assert.Contains(t, output, "length=9")
	})

	t.Run("logs error without result fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*faqify.Extraction, error) {
				return nil, faqify.Errorf(faqify.EUNPROCESSABLE, "insufficient content")
			},
		}

		ext := faqslog.NewLoggingExtractor(inner, newDebugLogger(&buf))
		_, err := ext.Extract("<p>x</p>")

		require.Error(t, err)
		output := buf.String()
		assert.NotContains(t, output, "method=")
		assert.Contains(t, output, "insufficient content")
	})
}
