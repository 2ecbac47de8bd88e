package pipeline

import (
	"time"

	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/pkg/metrics"
)

// Status classifies how a run ended.
type Status string

const (
	StatusSuccess               Status = "success"
	StatusInvalidURL            Status = "invalid_url"
	StatusTranscriptUnavailable Status = "transcript_unavailable"
	StatusSummarizationFailed   Status = "summarization_failed"
	StatusInternalError         Status = "internal_error"
)

// Labels surfaced in Result.TopicName on the failure paths.
const (
	TopicURLError        = "URL Error"
	TopicTranscriptError = "Transcript Error"

	TranscriptErrorMessage = "Could not fetch transcript for this video. The video might not have captions available."
)

// Report describes a finished run. Result is what callers see; the other
// fields feed logs, metrics, and history.
type Report struct {
	Result          summarizer.Result
	Status          Status
	VideoID         string
	TranscriptChars int
	Usage           metrics.TokenUsage
	Duration        time.Duration
	Err             error
}
