package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/ldino3121/faqify"
	"github.com/ldino3121/faqify/batch"
	"github.com/ldino3121/faqify/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	data, err := deps.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s: %v\n", c.File, err)
		return err
	}

	sources, err := batch.ReadSources(bytes.NewReader(data), deps.ReadFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no sources found in %s\n", c.File)
		return faqify.Errorf(faqify.EINVALID, "no sources in %s", c.File)
	}

	if deps.NewGenerator == nil {
		return faqify.Errorf(faqify.EAUTH, "no completion service configured")
	}
	gen, err := deps.NewGenerator(c.Extractor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqify.ErrorMessage(err))
		return err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = deps.Config.Batch.Concurrency
	}
	runner := &batch.Runner{
		Generator:   gen,
		RateLimiter: batch.NewDomainLimiter(deps.Config.Batch.RateLimit),
		Concurrency: concurrency,
		Count:       faqify.ParseCount(c.Count),
		Timeout:     c.Timeout,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d sources\n", event.Total)
		case batch.ProgressCompleted:
			o := event.Outcome
			fmt.Fprintf(deps.Stdout, "  [%d/%d] ok    %s (%d FAQs)\n",
				event.Completed, event.Total, batch.TruncateSource(o.Source.String(), 60), len(o.Result.FAQs))
		case batch.ProgressFailed:
			o := event.Outcome
			fmt.Fprintf(deps.Stdout, "  [%d/%d] fail  %s: %s\n",
				event.Completed, event.Total, batch.TruncateSource(o.Source.String(), 60), faqify.UserMessage(o.Err))
		}
	}

	outcomes, err := runner.Run(deps.Ctx, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		if c.Save {
			if err := saveResult(deps, o.Source, o.Result, ""); err != nil {
				fmt.Fprintf(deps.Stderr, "  save %s: %s\n", o.Source.String(), faqify.ErrorMessage(err))
			}
		}
		if c.OutDir != "" {
			if err := c.export(deps, o); err != nil {
				fmt.Fprintf(deps.Stderr, "  export %s: %v\n", o.Source.String(), err)
			}
		}
	}

	summary := batch.Summarize(outcomes)
	fmt.Fprintf(deps.Stdout, "Done: %d succeeded, %d failed (%s)\n",
		summary.Succeeded, summary.Failed, batch.FormatTokens(summary.Tokens))

	if summary.Succeeded == 0 {
		return faqify.Errorf(faqify.ENOFAQS, "every source failed")
	}
	return nil
}

// export writes one outcome into the output directory.
func (c *BatchCmd) export(deps *Dependencies, o batch.Outcome) error {
	format := fs.FormatMarkdown
	if c.Format == string(fs.FormatJSON) {
		format = fs.FormatJSON
	}
	name, err := fs.FileName(o.Source, o.Result.ContentHash, format.Ext())
	if err != nil {
		return err
	}
	return deps.Exporter.Export(filepath.Join(c.OutDir, name), o.Source, o.Result)
}
