package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExporter() *fs.Exporter {
	e := fs.NewExporter()
	e.Now = func() time.Time { return time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC) }
	return e
}

func sampleResult() *faqify.Result {
	return &faqify.Result{
		FAQs: []faqify.FAQ{
			{Question: "What was approved?", Answer: "A new transit plan."},
			{Question: "When does it start?", Answer: "In March."},
			{Question: "Will fares change?", Answer: "Not in the first phase."},
		},
		Title:     "Council: Transit Plan",
		Method:    "article<tag>",
		ParseMode: faqify.ParseJSON,
	}
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fs.FormatJSON, fs.FormatForPath("out/faqs.json"))
	assert.Equal(t, fs.FormatJSON, fs.FormatForPath("FAQS.JSON"))
	assert.Equal(t, fs.FormatMarkdown, fs.FormatForPath("faqs.md"))
	assert.Equal(t, fs.FormatMarkdown, fs.FormatForPath("faqs"))
	assert.Equal(t, "json", fs.FormatJSON.Ext())
	assert.Equal(t, "md", fs.FormatMarkdown.Ext())
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	src := faqify.NewURLSource("https://example.com/news/transit")

	t.Run("writes markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "faqs.md")

		err := newExporter().Export(path, src, sampleResult())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		want := `---
source: https://example.com/news/transit
title: 'Council: Transit Plan'
generated: "2025-01-08"
count: 3
method: article<tag>
---

# Council: Transit Plan

## 1. What was approved?
A new transit plan.

## 2. When does it start?
In March.

## 3. Will fares change?
Not in the first phase.
`
		assert.Equal(t, want, string(data))
	})

	t.Run("writes json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "faqs.json")

		err := newExporter().Export(path, src, sampleResult())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got struct {
			Source    string       `json:"source"`
			Generated time.Time    `json:"generated"`
			FAQs      []faqify.FAQ `json:"faqs"`
			ParseMode string       `json:"parseMode"`
		}
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "https://example.com/news/transit", got.Source)
		assert.Len(t, got.FAQs, 3)
		assert.Equal(t, "json", got.ParseMode)
		assert.Equal(t, 2025, got.Generated.Year())
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "faqs.md")

		require.NoError(t, newExporter().Export(path, src, sampleResult()))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "faqs.md")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, newExporter().Export(path, src, sampleResult()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEqual(t, "old", string(data))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects empty result", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "faqs.md")

		err := newExporter().Export(path, src, &faqify.Result{})

		require.Error(t, err)
		assert.Equal(t, faqify.EINVALID, faqify.ErrorCode(err))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
