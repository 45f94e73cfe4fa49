package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/mock"
	faqslog "github.com/ldino3121/faqify/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatorReturning(result *faqify.Result, err error) *mock.Generator {
	return &mock.Generator{
		GenerateFn: func(ctx context.Context, src faqify.Source, count int) (*faqify.Result, error) {
			return result, err
		},
	}
}

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs summary at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := generatorReturning(&faqify.Result{
			FAQs:          make([]faqify.FAQ, 5),
			Method:        "article<tag>",
			ParseMode:     faqify.ParseJSON,
			ContentLength: 1200,
		}, nil)

		g := faqslog.NewLoggingGenerator(inner, logger)
		result, err := g.Generate(context.Background(), faqify.NewURLSource("https://example.com/a"), 5)

		require.NoError(t, err)
		assert.Len(t, result.FAQs, 5)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "kind=url")
		assert.Contains(t, output, "source=https://example.com/a")
		assert.Contains(t, output, "count=5")
		assert.Contains(t, output, "contentLength=1200")
		assert.NotContains(t, output, "level=WARN")
	})

	t.Run("warns on parser fallback", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := generatorReturning(&faqify.Result{
			FAQs:      make([]faqify.FAQ, 3),
			ParseMode: faqify.ParseText,
		}, nil)

		g := faqslog.NewLoggingGenerator(inner, logger)
		_, err := g.Generate(context.Background(), faqify.NewTextSource("some text"), 3)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "response parser fallback")
		assert.Contains(t, output, "mode=text")
	})

	t.Run("warns on synthesized records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := generatorReturning(&faqify.Result{
			FAQs:        make([]faqify.FAQ, 5),
			ParseMode:   faqify.ParseJSON,
			Synthesized: 2,
		}, nil)

		g := faqslog.NewLoggingGenerator(inner, logger)
		_, err := g.Generate(context.Background(), faqify.NewTextSource("some text"), 5)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "synthesized=2")
	})

	t.Run("logs errors with code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := generatorReturning(nil, faqify.Errorf(faqify.ETIMEOUT, "all 5 request profiles failed"))

		g := faqslog.NewLoggingGenerator(inner, logger)
		_, err := g.Generate(context.Background(), faqify.NewURLSource("https://slow.example.com"), 5)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=timeout")
	})
}
