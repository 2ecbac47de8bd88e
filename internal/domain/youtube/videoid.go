package youtube

import (
	"errors"
	"strings"

	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

const (
	longFormMarker  = "youtube.com/watch?v="
	shortFormMarker = "youtu.be/"
)

// ErrInvalidURLFormat is returned when a URL matches neither known shape.
// The text reaches clients inside the URL Error result, hence the capital.
var ErrInvalidURLFormat = errors.New("Invalid YouTube URL format")

// ExtractVideoID pulls the video identifier out of a watch or short link.
// The identifier is not validated: whatever sits between the marker and the
// next separator is returned as-is, even when empty.
func ExtractVideoID(rawURL string) (string, error) {
	if idx := strings.Index(rawURL, longFormMarker); idx >= 0 {
		id, _, _ := strings.Cut(rawURL[idx+len(longFormMarker):], "&")
		return id, nil
	}
	if strings.Contains(rawURL, shortFormMarker) {
		segment := rawURL[strings.LastIndex(rawURL, "/")+1:]
		id, _, _ := strings.Cut(segment, "?")
		return id, nil
	}
	return "", apperrors.Wrap(apperrors.CodeInvalidURL, "Could not extract video ID from URL", ErrInvalidURLFormat)
}
