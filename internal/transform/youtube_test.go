package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"watch", "https://www.youtube.com/watch?v=xyz789", "xyz789", true},
		{"watch with extra params", "https://www.youtube.com/watch?v=xyz789&list=foo&t=30", "xyz789", true},
		{"short", "https://youtu.be/abc123", "abc123", true},
		{"short with params", "https://youtu.be/abc123?si=share", "abc123", true},
		{"embed", "https://www.youtube.com/embed/def456", "def456", true},
		{"live", "https://www.youtube.com/live/ghi012?feature=share", "ghi012", true},
		{"unrecognized host", "https://vimeo.com/12345", "", false},
		{"bare homepage", "https://www.youtube.com", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := YouTubeID(tc.url)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestYouTubeHelpers(t *testing.T) {
	assert.True(t, IsValidYouTubeURL("https://youtu.be/abc123"))
	assert.False(t, IsValidYouTubeURL("not a url"))
	assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", YouTubeThumbnail("abc123"))
	assert.Equal(t, "https://www.youtube.com/embed/abc123?autoplay=1", YouTubeEmbedURL("abc123"))
}
