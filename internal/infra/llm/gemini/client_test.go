package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestCompletionFromResponse(t *testing.T) {
	tests := []struct {
		name      string
		resp      *genai.GenerateContentResponse
		wantText  string
		wantTotal int
		wantErr   string
	}{
		{
			name:    "nil response",
			resp:    nil,
			wantErr: "no candidates",
		},
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: "no candidates",
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			},
			wantErr: "no content",
		},
		{
			name: "non text parts only",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
				}},
			},
			wantErr: "no text parts",
		},
		{
			name: "joins text parts and maps usage",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{
						genai.Text("Topic: Go Generics\n"),
						genai.Text("Summary: Type parameters explained. "),
					}},
				}},
				UsageMetadata: &genai.UsageMetadata{
					PromptTokenCount:     30,
					CandidatesTokenCount: 10,
					TotalTokenCount:      40,
				},
			},
			wantText:  "Topic: Go Generics\nSummary: Type parameters explained.",
			wantTotal: 40,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			completion, err := completionFromResponse(tt.resp)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantText, completion.Text)
			require.Equal(t, tt.wantTotal, completion.Usage.TotalTokens)
		})
	}
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(context.Background(), "", "gemini-2.0-flash-exp", 0)
	require.ErrorContains(t, err, "api key")

	_, err = NewClient(context.Background(), "key", " ", 0)
	require.ErrorContains(t, err, "model")
}

func TestGenerate(t *testing.T) {
	var gotPath, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil && len(body.Contents) > 0 && len(body.Contents[0].Parts) > 0 {
			gotPrompt = body.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": " Go Channels\nHow goroutines talk. "}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 5, "candidatesTokenCount": 3, "totalTokenCount": 8}
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), "test-key", "gemini-2.0-flash-exp", 0.2,
		option.WithEndpoint(srv.URL), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	defer client.Close()

	completion, err := client.Generate(context.Background(), "summarize this")
	require.NoError(t, err)
	require.Equal(t, "Go Channels\nHow goroutines talk.", completion.Text)
	require.Equal(t, 5, completion.Usage.PromptTokens)
	require.Equal(t, 3, completion.Usage.CompletionTokens)
	require.Equal(t, 8, completion.Usage.TotalTokens)
	require.Contains(t, gotPath, "gemini-2.0-flash-exp:generateContent")
	require.Equal(t, "summarize this", gotPrompt)
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), "bad-key", "gemini-2.0-flash-exp", 0,
		option.WithEndpoint(srv.URL), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Generate(context.Background(), "prompt")
	require.ErrorContains(t, err, "generate content")
}
