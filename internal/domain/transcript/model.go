package transcript

import "context"

// Fragment is one timed caption unit as returned by the transcript source.
type Fragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Source retrieves the ordered caption fragments of a video.
type Source interface {
	Fetch(ctx context.Context, videoID string) ([]Fragment, error)
}
