// Package llm adapts external text-generation services behind a single
// prompt-in, text-out interface.
package llm

import (
	"context"
	"errors"
)

// Provider turns a natural-language instruction into free text. It is
// a black box to the rest of the app: no retry policy, no structured
// output.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNoAPIKey indicates the provider was constructed without a key.
var ErrNoAPIKey = errors.New("llm: api key not configured")

// StaticProvider always fails, which pushes callers onto their
// deterministic fallback. Used when no provider is configured and in
// tests.
type StaticProvider struct{}

func (StaticProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("llm: static provider has no backend")
}
