package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider sends the instruction as a single user message via
// the chat completions API.
type OpenAIProvider struct {
	model  string
	client *openai.Client
}

// NewOpenAIProvider returns a provider for the given key and model.
// A nil client is kept when the key is empty so Generate fails fast.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	p := &OpenAIProvider{model: strings.TrimSpace(model)}
	if k := strings.TrimSpace(apiKey); k != "" {
		p.client = openai.NewClient(k)
	}
	return p
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.client == nil {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	model := p.model
	if model == "" {
		model = openai.GPT4oMini
	}
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: 400,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai: empty response text")
	}
	return text, nil
}
