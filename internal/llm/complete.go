package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is wrapped in ErrInvalidResponse when a provider
// answers with no text.
var ErrEmptyCompletion = errors.New("empty completion")

// Complete sends one user prompt and returns the reply text. A blank reply
// or a reply cut off at maxTokens is an error; callers never see partial
// prose.
func Complete(ctx context.Context, p Provider, system, prompt string, maxTokens int) (string, error) {
	resp, err := p.Generate(ctx, Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" && resp.StopReason != StopRefusal {
		return "", &ErrInvalidResponse{Content: resp.Content, Err: ErrEmptyCompletion}
	}
	switch resp.StopReason {
	case StopMaxTokens:
		return "", &ErrMaxTokensExceeded{Content: resp.Content}
	case StopRefusal:
		return "", &ErrRefused{Content: resp.Content}
	}
	return text, nil
}
