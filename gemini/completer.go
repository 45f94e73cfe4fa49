// Package gemini implements faqify.Completer and faqify.TokenCounter on top of
// the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/ldino3121/faqify"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = "You write FAQ sections for web pages. Use only the supplied content. " +
	"Never write about the author, reporter or publication. Reply with JSON only."

// Ensure Completer implements faqify.Completer at compile time.
var _ faqify.Completer = (*Completer)(nil)

// Completer implements faqify.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the model name requests are sent to.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends prompt to Gemini in a single request and returns the text
// of the first candidate. It never retries; failures are classified with
// ClassifyError.
func (c *Completer) Complete(ctx context.Context, prompt string, params faqify.GenerationParams) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", faqify.Errorf(faqify.EINVALID, "prompt required")
	}
	if c.client == nil {
		return "", faqify.Errorf(faqify.EAUTH, "gemini client not configured")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(params),
	)
	if err != nil {
		return "", ClassifyError(err)
	}

	return ResponseText(result)
}

// BuildConfig returns the GenerateContentConfig for the given parameters.
// Zero-valued parameters are left unset so the service defaults apply.
func BuildConfig(params faqify.GenerationParams) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(),
		Temperature:       genai.Ptr(params.Temperature),
	}
	if params.TopK > 0 {
		config.TopK = genai.Ptr(float32(params.TopK))
	}
	if params.TopP > 0 {
		config.TopP = genai.Ptr(params.TopP)
	}
	if params.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(params.MaxOutputTokens)
	}
	return config
}

func systemInstruction() *genai.Content {
	return &genai.Content{
		Parts: []*genai.Part{{Text: systemPrompt}},
	}
}

// ResponseText returns the text of a completion. A nil response or a
// response without text is reported as EUNAVAILABLE.
func ResponseText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil {
		return "", faqify.Errorf(faqify.EUNAVAILABLE, "gemini returned nil result")
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", faqify.Errorf(faqify.EUNAVAILABLE, "gemini returned an empty completion")
	}
	return text, nil
}

// ClassifyError maps a Gemini client error onto the generation error codes.
// Context cancellation is returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return faqify.Errorf(faqify.ETIMEOUT, "gemini request timed out")
	}

	if apiErr, ok := asAPIError(err); ok {
		return classifyAPIError(apiErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return faqify.Errorf(faqify.ETIMEOUT, "gemini request timed out")
	}
	if invalidKey(err.Error()) {
		return faqify.Errorf(faqify.EAUTH, "gemini rejected the API key")
	}
	return faqify.Errorf(faqify.EUNAVAILABLE, "gemini request failed").WithDetails("%v", err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}

func classifyAPIError(e genai.APIError) error {
	details := func(err *faqify.Error) *faqify.Error {
		return err.WithDetails("status %d %s: %s", e.Code, e.Status, e.Message)
	}

	switch {
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden ||
		e.Status == "UNAUTHENTICATED" || e.Status == "PERMISSION_DENIED" || invalidKey(e.Message):
		return details(faqify.Errorf(faqify.EAUTH, "gemini rejected the API key"))
	case e.Code == http.StatusTooManyRequests || e.Status == "RESOURCE_EXHAUSTED":
		if strings.Contains(strings.ToLower(e.Message), "quota") {
			return details(faqify.Errorf(faqify.EQUOTA, "gemini quota exceeded"))
		}
		return details(faqify.Errorf(faqify.ERATELIMIT, "gemini rate limit exceeded"))
	case e.Code == http.StatusGatewayTimeout || e.Status == "DEADLINE_EXCEEDED":
		return details(faqify.Errorf(faqify.ETIMEOUT, "gemini request timed out"))
	default:
		return details(faqify.Errorf(faqify.EUNAVAILABLE, "gemini service error"))
	}
}

func invalidKey(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "api key not valid") || strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "api_key_invalid")
}
