package gemini

import (
	"context"

	"github.com/ldino3121/faqify"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ faqify.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens locally with the Gemini tokenizer,
// including the system instruction the Completer sends.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
// An empty model selects DefaultModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the tokens a prompt of text would consume.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := tc.tok.CountTokens(contents, &genai.CountTokensConfig{
		SystemInstruction: systemInstruction(),
	})
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
