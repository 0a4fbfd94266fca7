// Package media handles image storage: validation, unique object naming,
// streamed uploads with progress reporting, and deletion by public URL.
package media

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// MaxImageBytes caps uploads at 5MB.
const MaxImageBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// ValidateImage checks an upload before any bytes move. Errors are
// human-readable and safe to show in the admin UI.
func ValidateImage(filename string, size int64, contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("please select an image file (JPEG, PNG, GIF, WebP)")
	}
	if size > MaxImageBytes {
		return fmt.Errorf("image size must be less than 5MB")
	}
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("allowed formats: JPEG, PNG, GIF, WebP")
	}
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("missing filename")
	}
	return nil
}

// ValidateImageURL checks an externally hosted image URL.
func ValidateImageURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("please enter a URL")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return fmt.Errorf("please enter a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// LooksLikeImageURL is a heuristic check for a known image extension; a
// miss is a warning condition, not an error.
func LooksLikeImageURL(raw string) bool {
	lower := strings.ToLower(raw)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

var unsafeNameRunes = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ObjectName builds a unique storage path for an upload: the sanitized
// original stem plus a random suffix, under the given folder (e.g. "blogs").
func ObjectName(original, folder string) string {
	ext := path.Ext(original)
	stem := unsafeNameRunes.ReplaceAllString(strings.TrimSuffix(path.Base(original), ext), "-")
	if stem == "" {
		stem = "upload"
	}
	return fmt.Sprintf("%s/%s-%s%s", folder, stem, uuid.NewString()[:8], ext)
}

// PublicURL is the durable download URL for a stored object.
func PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}

var firebasePathPattern = regexp.MustCompile(`/o/(.+?)(\?|$)`)

// ObjectPathFromURL recovers the object path from a previously issued
// download URL. Both the Firebase download form
// (firebasestorage.googleapis.com/v0/b/<bucket>/o/<escaped-path>?...) and
// the plain GCS form (storage.googleapis.com/<bucket>/<path>) are
// recognized; anything else returns ok=false.
func ObjectPathFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch {
	case strings.Contains(u.Hostname(), "firebasestorage.googleapis.com"):
		m := firebasePathPattern.FindStringSubmatch(u.Path)
		if m == nil {
			return "", false
		}
		p, err := url.PathUnescape(m[1])
		if err != nil {
			return "", false
		}
		return p, true
	case u.Hostname() == "storage.googleapis.com":
		trimmed := strings.TrimPrefix(u.Path, "/")
		_, object, found := strings.Cut(trimmed, "/")
		if !found || object == "" {
			return "", false
		}
		return object, true
	default:
		return "", false
	}
}
