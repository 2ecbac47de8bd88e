package summarizer

import (
	"context"

	"github.com/yanqian/yt-summarizer/pkg/metrics"
)

// Labels and fallbacks used when the model reply cannot fill a field.
const (
	DefaultTopic         = "Video Summary"
	DefaultSummary       = "Summary not available."
	TopicProcessingError = "Processing Error"
)

// Config configures prompt construction and reply shaping.
type Config struct {
	// MaxTranscriptChars bounds how much of the transcript is embedded in the
	// prompt. Characters past the limit are dropped, not summarized.
	MaxTranscriptChars int
	// MaxTopicChars bounds the topic label after cleanup.
	MaxTopicChars int
}

// Result is the two-field payload returned to callers on every path.
type Result struct {
	TopicName    string `json:"topic_name"`
	TopicSummary string `json:"topic_summary"`
}

// Completion is a single free-form reply from the language model.
type Completion struct {
	Text  string
	Usage metrics.TokenUsage
}

// LanguageModel turns a prompt into a free-form completion.
type LanguageModel interface {
	Generate(ctx context.Context, prompt string) (Completion, error)
}

// Outcome wraps the Result with diagnostics for logging and metrics.
// Err is set when the model call failed; Result already carries the message.
type Outcome struct {
	Result Result
	Usage  metrics.TokenUsage
	Err    error
}
