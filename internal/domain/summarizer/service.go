package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

const promptTemplate = `Summarize this YouTube video transcript in 2 parts:
1. Topic (5-6 words max)
2. Summary (2-3 sentences)

Transcript: %s`

var quoteReplacer = strings.NewReplacer(
	`"`, "",
	"'", "",
	"“", "",
	"”", "",
	"‘", "",
	"’", "",
)

// Service exposes topic and summary generation.
type Service interface {
	// Summarize never fails: model errors are folded into the Result.
	Summarize(ctx context.Context, transcript string) Outcome
}

type service struct {
	cfg    Config
	model  LanguageModel
	logger *slog.Logger
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, model LanguageModel, logger *slog.Logger) Service {
	return &service{cfg: cfg, model: model, logger: logger.With("component", "summarizer.service")}
}

func (s *service) Summarize(ctx context.Context, transcript string) Outcome {
	prompt := buildPrompt(transcript, s.cfg.MaxTranscriptChars)

	completion, err := s.model.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("language model call failed", "error", err)
		return Outcome{
			Result: Result{
				TopicName:    TopicProcessingError,
				TopicSummary: fmt.Sprintf("Failed to generate summary: %v", err),
			},
			Err: apperrors.Wrap(apperrors.CodeLLM, "language model call failed", err),
		}
	}
	s.logger.Debug("language model reply received", "content", completion.Text)

	result := parseReply(completion.Text)
	result.TopicName = truncate(result.TopicName, s.cfg.MaxTopicChars)
	return Outcome{Result: result, Usage: completion.Usage}
}

func buildPrompt(transcript string, limit int) string {
	return fmt.Sprintf(promptTemplate, truncate(transcript, limit))
}

// parseReply splits an unconstrained reply into topic and summary. The first
// non-empty line is the topic, the rest the summary; a lone line is the
// summary.
func parseReply(reply string) Result {
	result := Result{TopicName: DefaultTopic, TopicSummary: DefaultSummary}

	lines := nonEmptyLines(reply)
	switch {
	case len(lines) >= 2:
		if topic := cleanTopic(lines[0]); topic != "" {
			result.TopicName = topic
		}
		if summary := cleanSummary(strings.Join(lines[1:], " ")); summary != "" {
			result.TopicSummary = summary
		}
	case len(lines) == 1:
		if summary := cleanSummary(lines[0]); summary != "" {
			result.TopicSummary = summary
		}
	}
	return result
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(strings.TrimSpace(text), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func cleanTopic(candidate string) string {
	return stripQuotes(stripMarkers(candidate, "1.", "Topic:", "**"))
}

func cleanSummary(candidate string) string {
	return stripQuotes(stripMarkers(candidate, "2.", "Summary:", "**"))
}

func stripMarkers(text string, markers ...string) string {
	for _, marker := range markers {
		text = strings.ReplaceAll(text, marker, "")
	}
	return strings.TrimSpace(text)
}

func stripQuotes(text string) string {
	return strings.TrimSpace(quoteReplacer.Replace(text))
}

// truncate cuts text to at most limit characters. A non-positive limit
// disables truncation.
func truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
