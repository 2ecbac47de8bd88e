package transcript

import (
	"context"
	"log/slog"
	"strings"
)

// Service assembles a plain-text transcript for a video.
type Service interface {
	// Fetch returns the transcript text and true, or "" and false when the
	// source could not provide one.
	Fetch(ctx context.Context, videoID string) (string, bool)
}

type service struct {
	source Source
	logger *slog.Logger
}

// NewService is a wire provider for the transcript domain.
func NewService(source Source, logger *slog.Logger) Service {
	return &service{source: source, logger: logger.With("component", "transcript.service")}
}

func (s *service) Fetch(ctx context.Context, videoID string) (string, bool) {
	fragments, err := s.source.Fetch(ctx, videoID)
	if err != nil {
		// Every source failure collapses into "unavailable".
		s.logger.Warn("transcript fetch failed", "video_id", videoID, "error", err)
		return "", false
	}
	text := Join(fragments)
	s.logger.Debug("transcript assembled", "video_id", videoID, "fragments", len(fragments), "chars", len(text))
	return text, true
}

// Join concatenates fragment texts with single spaces in source order and
// trims the result. Timing information is dropped.
func Join(fragments []Fragment) string {
	var builder strings.Builder
	for i, fragment := range fragments {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(fragment.Text)
	}
	return strings.TrimSpace(builder.String())
}
