package media

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sikhaidindia/backend/internal/store"
)

const mediaCollection = "media"

// ObjectEvent is the payload of a storage object-finalized event.
type ObjectEvent struct {
	Bucket      string `json:"bucket"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        string `json:"size"`
	TimeCreated string `json:"timeCreated"`
}

// Recorder writes an index entry for every finalized upload so the admin
// panel can list stored media without walking the bucket.
type Recorder struct {
	s   store.DocStore
	now func() time.Time
}

// NewRecorder builds a recorder over the document store.
func NewRecorder(s store.DocStore) *Recorder {
	return &Recorder{s: s, now: time.Now}
}

// Record persists one upload event into the media collection.
func (r *Recorder) Record(ctx context.Context, ev ObjectEvent) error {
	logCtx := slog.With("bucket", ev.Bucket, "object", ev.Name)
	doc := map[string]any{
		"bucket":      ev.Bucket,
		"object":      ev.Name,
		"contentType": ev.ContentType,
		"size":        ev.Size,
		"url":         PublicURL(ev.Bucket, ev.Name),
		"uploadedAt":  ev.TimeCreated,
		"createdAt":   r.now().UTC().Format(time.RFC3339),
	}
	id, err := r.s.Add(ctx, mediaCollection, doc)
	if err != nil {
		logCtx.Error("Failed to record upload", "error", err)
		return fmt.Errorf("record upload %s: %w", ev.Name, err)
	}
	logCtx.Info("Upload recorded", "id", id)
	return nil
}
