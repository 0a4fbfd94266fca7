package media

import (
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		size        int64
		contentType string
		wantErr     string
	}{
		{"valid jpeg", "photo.jpg", 1024, "image/jpeg", ""},
		{"valid webp", "photo.webp", MaxImageBytes, "image/webp", ""},
		{"not an image", "doc.pdf", 1024, "application/pdf", "please select an image file"},
		{"too large", "big.png", MaxImageBytes + 1, "image/png", "less than 5MB"},
		{"unsupported image type", "icon.tiff", 1024, "image/tiff", "allowed formats"},
		{"missing filename", "  ", 1024, "image/png", "missing filename"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImage(tc.filename, tc.size, tc.contentType)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateImageURL(t *testing.T) {
	assert.NoError(t, ValidateImageURL("https://example.com/photo.jpg"))
	assert.NoError(t, ValidateImageURL("http://example.com/photo.jpg"))
	assert.Error(t, ValidateImageURL(""))
	assert.Error(t, ValidateImageURL("not a url"))
	assert.Error(t, ValidateImageURL("ftp://example.com/photo.jpg"))
}

func TestLooksLikeImageURL(t *testing.T) {
	assert.True(t, LooksLikeImageURL("https://example.com/photo.JPG"))
	assert.True(t, LooksLikeImageURL("https://example.com/pic.webp?w=200"))
	assert.False(t, LooksLikeImageURL("https://example.com/page"))
}

func TestObjectName(t *testing.T) {
	name := ObjectName("My Photo (1).jpg", "blogs")
	assert.Regexp(t, regexp.MustCompile(`^blogs/My-Photo--1--[0-9a-f-]{8}\.jpg$`), name)

	// Two names for the same file never collide.
	assert.NotEqual(t, name, ObjectName("My Photo (1).jpg", "blogs"))
}

func TestObjectNameEmptyStem(t *testing.T) {
	name := ObjectName(".jpg", "press")
	assert.True(t, strings.HasPrefix(name, "press/upload-"), name)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/sikhaid.appspot.com/blogs/cover.jpg",
		PublicURL("sikhaid.appspot.com", "blogs/cover.jpg"))
}

func TestObjectPathFromURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			"firebase download url",
			"https://firebasestorage.googleapis.com/v0/b/sikhaid.appspot.com/o/blogs%2Fcover.jpg?alt=media&token=abc",
			"blogs/cover.jpg",
			true,
		},
		{
			"plain gcs url",
			"https://storage.googleapis.com/sikhaid.appspot.com/press/article.png",
			"press/article.png",
			true,
		},
		{
			"gcs url without object",
			"https://storage.googleapis.com/sikhaid.appspot.com",
			"",
			false,
		},
		{
			"foreign host",
			"https://example.com/blogs/cover.jpg",
			"",
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ObjectPathFromURL(tc.url)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestObjectPathRoundTrip(t *testing.T) {
	object := "campaigns/hero-1a2b3c4d.png"
	got, ok := ObjectPathFromURL(PublicURL("sikhaid.appspot.com", object))
	require.True(t, ok)
	assert.Equal(t, object, got)
}

func TestProgressReaderReportsWholePercents(t *testing.T) {
	data := strings.Repeat("x", 100)
	var reports []int
	pr := &progressReader{
		r:      strings.NewReader(data),
		total:  int64(len(data)),
		report: func(pct int) { reports = append(reports, pct) },
	}

	buf := make([]byte, 25)
	for {
		if _, err := pr.Read(buf); err == io.EOF {
			break
		}
	}

	assert.Equal(t, []int{25, 50, 75, 100}, reports)
}
