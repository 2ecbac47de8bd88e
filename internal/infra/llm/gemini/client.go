package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/pkg/metrics"
)

// Client adapts a Gemini generative model to summarizer.LanguageModel.
type Client struct {
	api   *genai.Client
	model *genai.GenerativeModel
}

// NewClient dials the Gemini API. Callers must Close the client. Extra
// options follow the API key, so an endpoint or HTTP client can be swapped.
func NewClient(ctx context.Context, apiKey, model string, temperature float32, opts ...option.ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("gemini model cannot be empty")
	}
	api, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	generative := api.GenerativeModel(model)
	generative.SetTemperature(temperature)
	return &Client{api: api, model: generative}, nil
}

// Generate sends the prompt as a single text part.
func (c *Client) Generate(ctx context.Context, prompt string) (summarizer.Completion, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return summarizer.Completion{}, fmt.Errorf("generate content: %w", err)
	}
	return completionFromResponse(resp)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.api.Close()
}

func completionFromResponse(resp *genai.GenerateContentResponse) (summarizer.Completion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return summarizer.Completion{}, errors.New("gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return summarizer.Completion{}, fmt.Errorf("gemini candidate has no content (finish reason %v)", candidate.FinishReason)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return summarizer.Completion{}, errors.New("gemini candidate has no text parts")
	}

	completion := summarizer.Completion{Text: text}
	if usage := resp.UsageMetadata; usage != nil {
		completion.Usage = metrics.TokenUsage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}
	return completion, nil
}
