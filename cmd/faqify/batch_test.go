package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ldino3121/faqify"
	main "github.com/ldino3121/faqify/cmd/faqify"
	"github.com/ldino3121/faqify/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeList writes a batch list file and returns its path.
func writeList(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("processes every source and prints a summary", func(t *testing.T) {
		t.Parallel()

		list := writeList(t,
			"# morning stories",
			"https://a.example.com/one",
			"",
			"https://b.example.com/two",
		)

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Config.Batch.RateLimit = 0
		deps.NewGenerator = factoryFor(&mock.Generator{
			GenerateFn: func(_ context.Context, src faqify.Source, count int) (*faqify.Result, error) {
				return &faqify.Result{FAQs: sampleFAQs(count), PromptTokens: 1500}, nil
			},
		})

		cmd := &main.BatchCmd{File: list, Count: "3", Format: "markdown"}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Processing 2 sources")
		assert.Contains(t, out, "a.example.com/one")
		assert.Contains(t, out, "b.example.com/two")
		assert.Contains(t, out, "Done: 2 succeeded, 0 failed (~3k tokens)")
	})

	t.Run("continues past failures", func(t *testing.T) {
		t.Parallel()

		list := writeList(t, "https://a.example.com/blocked", "https://b.example.com/fine")

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Config.Batch.RateLimit = 0
		deps.NewGenerator = factoryFor(&mock.Generator{
			GenerateFn: func(_ context.Context, src faqify.Source, count int) (*faqify.Result, error) {
				if strings.Contains(src.URL, "blocked") {
					return nil, faqify.Errorf(faqify.EFORBIDDEN, "blocked")
				}
				return &faqify.Result{FAQs: sampleFAQs(count)}, nil
			},
		})

		cmd := &main.BatchCmd{File: list, Count: "5", Format: "markdown"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "fail")
		assert.Contains(t, stdout.String(), "Done: 1 succeeded, 1 failed")
	})

	t.Run("fails when every source fails", func(t *testing.T) {
		t.Parallel()

		list := writeList(t, "https://a.example.com/blocked")

		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Config.Batch.RateLimit = 0
		deps.NewGenerator = factoryFor(&mock.Generator{
			GenerateFn: func(context.Context, faqify.Source, int) (*faqify.Result, error) {
				return nil, faqify.Errorf(faqify.ENOTFOUND, "gone")
			},
		})

		cmd := &main.BatchCmd{File: list, Count: "5", Format: "markdown"}
		err := cmd.Run(deps)

		assert.Equal(t, faqify.ENOFAQS, faqify.ErrorCode(err))
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		t.Parallel()

		list := writeList(t, "# nothing here", "")

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)

		cmd := &main.BatchCmd{File: list, Count: "5", Format: "markdown"}
		err := cmd.Run(deps)

		assert.Equal(t, faqify.EINVALID, faqify.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no sources")
	})

	t.Run("reports a missing list file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)

		cmd := &main.BatchCmd{File: filepath.Join(t.TempDir(), "missing.txt"), Count: "5"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "cannot read")
	})

	t.Run("exports one file per source", func(t *testing.T) {
		t.Parallel()

		list := writeList(t, "https://news.example.com/city/budget")
		outDir := t.TempDir()

		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Config.Batch.RateLimit = 0
		deps.NewGenerator = factoryFor(&mock.Generator{
			GenerateFn: func(_ context.Context, src faqify.Source, count int) (*faqify.Result, error) {
				return &faqify.Result{Title: "Budget", FAQs: sampleFAQs(count)}, nil
			},
		})

		cmd := &main.BatchCmd{File: list, Count: "3", OutDir: outDir, Format: "json"}
		require.NoError(t, cmd.Run(deps))

		matches, err := filepath.Glob(filepath.Join(outDir, "*.json"))
		require.NoError(t, err)
		require.Len(t, matches, 1)

		data, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		assert.Contains(t, string(data), "https://news.example.com/city/budget")
	})

	t.Run("saves successful results", func(t *testing.T) {
		t.Parallel()

		list := writeList(t, "https://a.example.com/one", "https://b.example.com/two")

		var created []string
		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Config.Batch.RateLimit = 0
		deps.NewGenerator = factoryFor(&mock.Generator{
			GenerateFn: func(_ context.Context, src faqify.Source, count int) (*faqify.Result, error) {
				return &faqify.Result{FAQs: sampleFAQs(count)}, nil
			},
		})
		deps.Collections = &mock.CollectionService{
			CreateCollectionFn: func(_ context.Context, c *faqify.Collection) error {
				created = append(created, c.Source)
				return nil
			},
		}

		cmd := &main.BatchCmd{File: list, Count: "3", Save: true, Format: "markdown"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"https://a.example.com/one", "https://b.example.com/two"}, created)
	})
}
