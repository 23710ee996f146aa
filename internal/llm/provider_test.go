package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticProviderAlwaysFails(t *testing.T) {
	t.Parallel()

	_, err := StaticProvider{}.Generate(context.Background(), "anything")
	require.Error(t, err)
}

func TestOpenAIProviderNoKey(t *testing.T) {
	t.Parallel()

	p := NewOpenAIProvider("", "gpt-4o-mini")
	_, err := p.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrNoAPIKey)
}
