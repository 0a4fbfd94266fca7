package transform

import (
	"fmt"
	"regexp"
)

// The recognized URL shapes are mutually exclusive by host/path, so the
// order of attempts only matters for malformed inputs.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`youtu\.be/([^?]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^?]+)`),
	regexp.MustCompile(`youtube\.com/live/([^?]+)`),
}

// YouTubeID extracts the video identifier from any of the supported YouTube
// URL shapes (watch?v=, youtu.be/, /embed/, /live/). Unrecognized URLs
// return ok=false rather than an error.
func YouTubeID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsValidYouTubeURL reports whether a video identifier can be extracted.
func IsValidYouTubeURL(url string) bool {
	_, ok := YouTubeID(url)
	return ok
}

// YouTubeThumbnail returns the high-quality default thumbnail for a video.
func YouTubeThumbnail(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
}

// YouTubeEmbedURL returns the autoplaying embed URL for a video.
func YouTubeEmbedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", videoID)
}
