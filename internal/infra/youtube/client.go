package youtube

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	ytlib "github.com/kkdai/youtube/v2"

	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
)

// ErrNoCaptions is returned when the video exposes no caption tracks.
var ErrNoCaptions = errors.New("video has no caption tracks")

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// videoAPI is the slice of the YouTube client the source needs.
type videoAPI interface {
	GetVideoContext(ctx context.Context, id string) (*ytlib.Video, error)
	GetTranscriptCtx(ctx context.Context, video *ytlib.Video, lang string) (ytlib.VideoTranscript, error)
}

// Client fetches caption transcripts through the YouTube innertube API.
type Client struct {
	api       videoAPI
	languages []string
	logger    *slog.Logger
}

// NewClient constructs a transcript source.
func NewClient(languages []string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	api := &ytlib.Client{HTTPClient: &http.Client{Timeout: timeout}}
	return newClient(api, languages, logger)
}

func newClient(api videoAPI, languages []string, logger *slog.Logger) *Client {
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	return &Client{
		api:       api,
		languages: languages,
		logger:    logger.With("component", "youtube.client"),
	}
}

// Fetch implements transcript.Source.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]transcript.Fragment, error) {
	video, err := c.api.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("load video: %w", err)
	}
	if len(video.CaptionTracks) == 0 {
		return nil, ErrNoCaptions
	}

	track := pickBestTrack(video.CaptionTracks, c.languages)
	c.logger.Debug("caption track selected", "video_id", videoID, "language", track.LanguageCode, "kind", track.Kind)

	segments, err := c.api.GetTranscriptCtx(ctx, video, track.LanguageCode)
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}

	fragments := make([]transcript.Fragment, 0, len(segments))
	for _, segment := range segments {
		text := cleanCaption(segment.Text)
		if text == "" {
			continue
		}
		fragments = append(fragments, transcript.Fragment{
			Text:     text,
			Start:    float64(segment.StartMs) / 1000,
			Duration: float64(segment.Duration) / 1000,
		})
	}
	return fragments, nil
}

// pickBestTrack prefers a manual track in a preferred language, then an
// auto-generated one, then any English track, then the first track.
func pickBestTrack(tracks []ytlib.CaptionTrack, languages []string) ytlib.CaptionTrack {
	for _, lang := range languages {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t
			}
		}
	}
	for _, lang := range languages {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t
			}
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t
		}
	}
	return tracks[0]
}

// cleanCaption decodes leftover entities, drops inline markup and folds
// line breaks.
func cleanCaption(raw string) string {
	text := html.UnescapeString(raw)
	text = htmlTagRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
