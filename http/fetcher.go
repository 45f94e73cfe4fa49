// Package http provides an HTTP-based implementation of faqify.Fetcher that
// tries a sequence of request profiles until one returns usable HTML.
// It does not execute JavaScript.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/ldino3121/faqify"
)

// Fetch limits.
const (
	DefaultMinBodyLength = 100
	DefaultMaxBodySize   = 10 << 20
	MaxRedirects         = 10
)

// Ensure Fetcher implements faqify.Fetcher at compile time.
var _ faqify.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
type Fetcher struct {
	client   *http.Client
	profiles []Profile
	backoff  Backoff
	limiter  faqify.DomainLimiter
	timeout  time.Duration
	minBody  int
	maxBody  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithProfiles replaces the default request profiles.
func WithProfiles(profiles []Profile) Option {
	return func(f *Fetcher) {
		f.profiles = profiles
	}
}

// WithTimeout overrides the timeout of every profile.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBackoff sets the delay between profile attempts.
// Defaults to DefaultBackoffBase doubling up to DefaultBackoffMax.
func WithBackoff(base, max time.Duration) Option {
	return func(f *Fetcher) {
		f.backoff = Backoff{Base: base, Max: max}
	}
}

// WithLimiter makes every attempt wait on a per-domain rate limiter.
func WithLimiter(l faqify.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithMinBodyLength sets the number of non-blank characters a response needs to
// count as a success.
func WithMinBodyLength(n int) Option {
	return func(f *Fetcher) {
		f.minBody = n
	}
}

// WithMaxBodySize limits how many bytes of a response body are read.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		profiles: DefaultProfiles(),
		backoff:  Backoff{Base: DefaultBackoffBase, Max: DefaultBackoffMax},
		minBody:  DefaultMinBodyLength,
		maxBody:  DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", MaxRedirects)
			}
			return nil
		},
	}

	return f
}

// Profiles returns the number of request profiles.
func (f *Fetcher) Profiles() int {
	return len(f.profiles)
}

// Fetch tries each request profile in order, waiting with exponential
// backoff between attempts, and returns the first usable body. When every
// profile fails the error is classified by precedence: EFORBIDDEN, then
// ENOTFOUND, then ETIMEOUT, then ENETWORK. Context cancellation is returned
// unchanged.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := validateURL(rawURL); err != nil {
		return "", err
	}
	if len(f.profiles) == 0 {
		return "", faqify.Errorf(faqify.EINVALID, "no request profiles configured")
	}

	failures := make([]string, 0, len(f.profiles))
	codes := make([]string, 0, len(f.profiles))
	for i := range f.profiles {
		if i > 0 {
			if err := sleep(ctx, f.backoff.Delay(i-1)); err != nil {
				return "", err
			}
		}

		html, err := f.FetchProfile(ctx, rawURL, i)
		if err == nil {
			return html, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		codes = append(codes, faqify.ErrorCode(err))
		failures = append(failures, f.profiles[i].Name+": "+faqify.ErrorMessage(err))
	}

	return "", faqify.Errorf(classify(codes), "all %d request profiles failed for %s", len(f.profiles), rawURL).
		WithDetails("%s", strings.Join(failures, "; "))
}

// FetchProfile performs a single attempt with the profile at index.
func (f *Fetcher) FetchProfile(ctx context.Context, rawURL string, index int) (string, error) {
	if index < 0 || index >= len(f.profiles) {
		return "", faqify.Errorf(faqify.EINVALID, "profile index %d out of range", index)
	}
	if err := validateURL(rawURL); err != nil {
		return "", err
	}
	p := f.profiles[index]

	if f.limiter != nil {
		u, _ := url.Parse(rawURL)
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", err
		}
	}

	timeout := p.Timeout
	if f.timeout > 0 {
		timeout = f.timeout
	}
	attemptCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", faqify.Errorf(faqify.EINVALID, "invalid request: %v", err)
	}
	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", faqify.Errorf(statusCode(resp.StatusCode), "HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", classifyTransportError(err)
	}
	if nonBlank(body) < f.minBody {
		return "", faqify.Errorf(faqify.ENETWORK, "response body too short (%d bytes)", len(body))
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return faqify.Errorf(faqify.EINVALID, "invalid URL %q: must be an absolute http or https URL", rawURL)
	}
	return nil
}

func statusCode(status int) string {
	switch status {
	case http.StatusForbidden, http.StatusTooManyRequests:
		return faqify.EFORBIDDEN
	case http.StatusNotFound:
		return faqify.ENOTFOUND
	default:
		return faqify.ENETWORK
	}
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return faqify.Errorf(faqify.ETIMEOUT, "request timed out")
	}
	return faqify.Errorf(faqify.ENETWORK, "request failed: %v", err)
}

// classify picks the final code for a set of per-profile failures.
func classify(codes []string) string {
	for _, want := range []string{faqify.EFORBIDDEN, faqify.ENOTFOUND, faqify.ETIMEOUT} {
		for _, code := range codes {
			if code == want {
				return want
			}
		}
	}
	return faqify.ENETWORK
}

func nonBlank(b []byte) int {
	n := 0
	for _, r := range string(b) {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
