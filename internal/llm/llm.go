package llm

import (
	"context"
	"errors"
)

// Client abstracts the generative model provider. Implementations return the
// model's raw text response; callers are responsible for validating it.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse is returned when the provider produced no usable text.
var ErrEmptyResponse = errors.New("empty model response")

// ErrNotConfigured is returned by the placeholder client when no provider is wired.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is used when no provider credentials are configured.
// Every call fails, which surfaces as a stage failure rather than a crash.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
