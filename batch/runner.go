// Package batch generates FAQs for many sources with bounded concurrency
// and per-domain rate limiting.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/ldino3121/faqify"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources processed at once when the
// runner does not set one.
const DefaultConcurrency = 4

// Runner generates FAQs for a list of sources.
//
// A retry reruns the whole generation for the source: the fetch with every
// request profile, extraction and completion. With the default delays a
// source that keeps failing transiently costs four full attempts plus 7s of
// backoff, so its latency is roughly four times that of a single attempt.
// Timeout bounds the total.
type Runner struct {
	Generator   faqify.Generator
	RateLimiter faqify.DomainLimiter
	Concurrency int
	Count       int

	// Timeout bounds each source, including retries. Zero means no limit.
	Timeout time.Duration

	// RetryDelays are the waits between attempts for transient failures.
	// Nil means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// Outcome is the result of processing one source.
type Outcome struct {
	Position int
	Source   faqify.Source
	Result   *faqify.Result
	Err      error
	Attempts int
	Duration time.Duration
}

// OK reports whether the source produced FAQs.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Outcome   *Outcome
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is called
// from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// Summary counts the outcomes of a batch.
type Summary struct {
	Succeeded int
	Failed    int
	Tokens    int
}

// Summarize counts succeeded and failed outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		if o.OK() {
			s.Succeeded++
			s.Tokens += o.Result.PromptTokens
		} else {
			s.Failed++
		}
	}
	return s
}

// Run de-duplicates sources and generates FAQs for each. A failing source
// does not stop the batch; its error is recorded in its Outcome. Outcomes
// are returned in input order. The returned error is non-nil only when the
// context is canceled.
func (r *Runner) Run(ctx context.Context, sources []faqify.Source, progress ProgressFunc) ([]Outcome, error) {
	sources = Dedupe(sources)
	total := len(sources)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	count := r.Count
	if count == 0 {
		count = faqify.DefaultCount
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	outcomeCh := make(chan Outcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range sources {
			g.Go(func() error {
				outcomeCh <- r.process(gctx, i, src, count, delays)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	outcomes := make([]Outcome, total)
	var completed atomic.Int64
	for outcome := range outcomeCh {
		completed.Add(1)
		outcomes[outcome.Position] = outcome

		if progress != nil {
			typ := ProgressCompleted
			if !outcome.OK() {
				typ = ProgressFailed
			}
			progress(ProgressEvent{
				Type:      typ,
				Completed: int(completed.Load()),
				Total:     total,
				Outcome:   &outcome,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return outcomes, ctx.Err()
}

// process generates FAQs for a single source.
func (r *Runner) process(ctx context.Context, position int, src faqify.Source, count int, delays []time.Duration) Outcome {
	begin := time.Now()
	outcome := Outcome{Position: position, Source: src}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	outcome.Result, outcome.Attempts, outcome.Err = generateWithRetry(ctx, func(ctx context.Context) (*faqify.Result, error) {
		if err := r.wait(ctx, src); err != nil {
			return nil, err
		}
		return r.Generator.Generate(ctx, src, count)
	}, delays)

	outcome.Duration = time.Since(begin)
	return outcome
}

// wait applies the per-domain rate limit to URL sources.
func (r *Runner) wait(ctx context.Context, src faqify.Source) error {
	if r.RateLimiter == nil || src.Kind != faqify.SourceURL {
		return nil
	}
	u, err := url.Parse(src.URL)
	if err != nil {
		return nil
	}
	return r.RateLimiter.Wait(ctx, u.Hostname())
}
