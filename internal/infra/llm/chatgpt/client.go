package chatgpt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/pkg/metrics"
)

// Client adapts the OpenAI chat completion API to summarizer.LanguageModel.
// Any OpenAI compatible endpoint works when BaseURL is set.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
}

// NewClient constructs a ChatGPT client.
func NewClient(apiKey, baseURL, model string, temperature float32) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chatgpt api key cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("chatgpt model cannot be empty")
	}
	clientConfig := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: temperature,
	}, nil
}

// Generate sends the prompt as a single user message and returns the first
// choice.
func (c *Client) Generate(ctx context.Context, prompt string) (summarizer.Completion, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return summarizer.Completion{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return summarizer.Completion{}, errors.New("chat completion returned no choices")
	}

	return summarizer.Completion{
		Text: strings.TrimSpace(resp.Choices[0].Message.Content),
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
