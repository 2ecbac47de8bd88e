package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "watch url with params", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL1", want: "dQw4w9WgXcQ"},
		{name: "mobile watch url", url: "https://m.youtube.com/watch?v=abc123&feature=share", want: "abc123"},
		{name: "short url", url: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "short url with query", url: "https://youtu.be/dQw4w9WgXcQ?si=xyz&t=10", want: "dQw4w9WgXcQ"},
		{name: "short url without scheme", url: "youtu.be/xyz", want: "xyz"},
		{name: "empty identifier passes through", url: "https://www.youtube.com/watch?v=&t=1", want: ""},
		{name: "short url trailing slash", url: "https://youtu.be/", want: ""},
		{name: "long form wins over short form", url: "https://youtube.com/watch?v=long1&ref=youtu.be/short", want: "long1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractVideoID(tt.url)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExtractVideoIDRejectsUnknownShapes(t *testing.T) {
	urls := []string{
		"",
		"https://vimeo.com/12345",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"not a url",
	}
	for _, raw := range urls {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			id, err := ExtractVideoID(raw)
			require.Empty(t, id)
			require.ErrorIs(t, err, ErrInvalidURLFormat)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidURL))
			require.EqualError(t, err, "Could not extract video ID from URL: Invalid YouTube URL format")
		})
	}
}
