package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yanqian/yt-summarizer/internal/domain/history"
	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
	"github.com/yanqian/yt-summarizer/internal/domain/youtube"
	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
	"github.com/yanqian/yt-summarizer/pkg/metrics"
	"github.com/yanqian/yt-summarizer/pkg/util"
)

// Service runs extract → fetch → summarize for one URL.
type Service interface {
	// Run always returns a Report whose Result is safe to send to a client.
	Run(ctx context.Context, rawURL string) Report
}

// historySaveTimeout bounds the audit write so a stalled store cannot hold
// the response.
const historySaveTimeout = 2 * time.Second

// Observer receives one call per finished run.
type Observer interface {
	ObserveRun(status string, elapsed time.Duration, transcriptChars int, usage metrics.TokenUsage)
}

type service struct {
	transcripts transcript.Service
	summarizer  summarizer.Service
	history     history.Service
	observer    Observer
	logger      *slog.Logger

	historyTimeout time.Duration
}

// NewService is a wire provider for the request pipeline.
func NewService(transcripts transcript.Service, summarizerSvc summarizer.Service, historySvc history.Service, observer Observer, logger *slog.Logger) Service {
	return &service{
		transcripts: transcripts,
		summarizer:  summarizerSvc,
		history:     historySvc,
		observer:    observer,
		logger:      logger.With("component", "pipeline.service"),

		historyTimeout: historySaveTimeout,
	}
}

func (s *service) Run(ctx context.Context, rawURL string) (report Report) {
	start := time.Now()
	defer func() {
		if recovered := recover(); recovered != nil {
			s.logger.Error("pipeline panicked", "url", rawURL, "panic", recovered)
			report = Report{
				Result: summarizer.Result{
					TopicName:    summarizer.TopicProcessingError,
					TopicSummary: fmt.Sprintf("Failed to process video: %v", recovered),
				},
				Status:  StatusInternalError,
				VideoID: report.VideoID,
				Err:     apperrors.Wrap(apperrors.CodeInternal, "pipeline panicked", fmt.Errorf("%v", recovered)),
			}
		}
		report.Duration = time.Since(start)
		s.finish(ctx, rawURL, report)
	}()

	return s.run(ctx, rawURL, &report)
}

// run fills partial progress into report so a recovered panic can still see
// the video identifier.
func (s *service) run(ctx context.Context, rawURL string, report *Report) Report {
	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return Report{
			Result: summarizer.Result{TopicName: TopicURLError, TopicSummary: err.Error()},
			Status: StatusInvalidURL,
			Err:    err,
		}
	}
	report.VideoID = videoID

	text, ok := s.transcripts.Fetch(ctx, videoID)
	if !ok || text == "" {
		return Report{
			Result:  summarizer.Result{TopicName: TopicTranscriptError, TopicSummary: TranscriptErrorMessage},
			Status:  StatusTranscriptUnavailable,
			VideoID: videoID,
			Err:     apperrors.Wrap(apperrors.CodeTranscriptUnavailable, "transcript unavailable", nil),
		}
	}

	outcome := s.summarizer.Summarize(ctx, text)
	status := StatusSuccess
	if outcome.Err != nil {
		status = StatusSummarizationFailed
	}
	return Report{
		Result:          outcome.Result,
		Status:          status,
		VideoID:         videoID,
		TranscriptChars: len([]rune(text)),
		Usage:           outcome.Usage,
		Err:             outcome.Err,
	}
}

func (s *service) finish(ctx context.Context, rawURL string, report Report) {
	attrs := []any{
		"url", rawURL,
		"video_id", report.VideoID,
		"status", report.Status,
		"duration_ms", util.Millis(report.Duration),
	}
	if report.Err != nil {
		s.logger.Warn("summarize request finished with error", append(attrs, "error", report.Err)...)
	} else {
		s.logger.Info("summarize request finished", attrs...)
	}

	s.observer.ObserveRun(string(report.Status), report.Duration, report.TranscriptChars, report.Usage)
	// The client may already be gone; the audit write outlives it but not
	// the timeout.
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.historyTimeout)
	defer cancel()
	s.history.Record(recordCtx, history.Entry{
		URL:          rawURL,
		VideoID:      report.VideoID,
		Status:       string(report.Status),
		TopicName:    report.Result.TopicName,
		TopicSummary: report.Result.TopicSummary,
		DurationMs:   util.Millis(report.Duration),
	})
}
