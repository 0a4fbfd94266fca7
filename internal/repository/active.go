package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sikhaidindia/backend/internal/models"
	"github.com/sikhaidindia/backend/internal/store"
	"github.com/sikhaidindia/backend/internal/transform"
)

// activeRepo is the shared core for carousel/press content toggled by the
// isActive flag. Unlike publishedRepo there is no publish-date lifecycle:
// activation is freely flipped on and off by the admin panel.
type activeRepo[T any] struct {
	s          store.DocStore
	now        Clock
	collection string
	kind       string
	active     func(T) bool
	dates      func(T) (primary, fallback string)
}

func (r *activeRepo[T]) Create(ctx context.Context, record T) (string, error) {
	fields, err := encodeFields(record)
	if err != nil {
		return "", err
	}
	ts := timestamp(r.now)
	fields["createdAt"] = ts
	fields["updatedAt"] = ts
	id, err := r.s.Add(ctx, r.collection, transform.StripAbsentFields(fields))
	if err != nil {
		slog.Error("Create failed", "kind", r.kind, "error", err)
		return "", err
	}
	return id, nil
}

func (r *activeRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	var v T
	doc, err := r.s.Get(ctx, r.collection, id)
	if err != nil {
		return v, err
	}
	if err := store.Decode(doc, &v); err != nil {
		return v, err
	}
	return v, nil
}

// GetBySlug returns the active record with the given slug; inactive records
// stay hidden from public lookups.
func (r *activeRepo[T]) GetBySlug(ctx context.Context, slug string) (T, error) {
	var zero T
	docs, err := r.s.ListWhere(ctx, r.collection, "slug", slug)
	if err != nil {
		slog.Error("Slug lookup failed", "kind", r.kind, "slug", slug, "error", err)
		return zero, err
	}
	for _, doc := range docs {
		var v T
		if err := store.Decode(doc, &v); err != nil {
			return zero, err
		}
		if r.active(v) {
			return v, nil
		}
	}
	return zero, &store.NotFoundError{Collection: r.collection, ID: slug}
}

// ListAll returns every record for the admin panel, newest first.
func (r *activeRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	docs, err := r.s.List(ctx, r.collection)
	if err != nil {
		slog.Error("List failed", "kind", r.kind, "error", err)
		return nil, err
	}
	records, err := decodeAll[T](docs)
	if err != nil {
		return nil, err
	}
	transform.SortByEffectiveDate(records, r.dates)
	return records, nil
}

// ListActive returns the publicly visible records, filtered server-side and
// ordered locally.
func (r *activeRepo[T]) ListActive(ctx context.Context) ([]T, error) {
	docs, err := r.s.ListWhere(ctx, r.collection, "isActive", true)
	if err != nil {
		slog.Error("List active failed", "kind", r.kind, "error", err)
		return nil, err
	}
	records, err := decodeAll[T](docs)
	if err != nil {
		return nil, err
	}
	transform.SortByEffectiveDate(records, r.dates)
	return records, nil
}

func (r *activeRepo[T]) update(ctx context.Context, id string, changes any) error {
	fields, err := normalizeFields(transform.StripAbsentStruct(changes))
	if err != nil {
		return err
	}
	fields["updatedAt"] = timestamp(r.now)
	if err := r.s.Update(ctx, r.collection, id, fields); err != nil {
		if !store.IsNotFound(err) {
			slog.Error("Update failed", "kind", r.kind, "id", id, "error", err)
		}
		return err
	}
	return nil
}

// Delete removes the record; missing ids are a silent no-op.
func (r *activeRepo[T]) Delete(ctx context.Context, id string) error {
	if err := r.s.Delete(ctx, r.collection, id); err != nil {
		slog.Error("Delete failed", "kind", r.kind, "id", id, "error", err)
		return err
	}
	return nil
}

// PressRepo persists press coverage items.
type PressRepo struct {
	activeRepo[models.PressItem]
}

func newPressRepo(s store.DocStore, now Clock) *PressRepo {
	return &PressRepo{activeRepo[models.PressItem]{
		s:          s,
		now:        now,
		collection: ColPress,
		kind:       "press",
		active:     func(p models.PressItem) bool { return p.IsActive },
		dates:      func(p models.PressItem) (string, string) { return p.PublishedDate, p.CreatedAt },
	}}
}

// Create derives the article slug from the title and the video id from the
// YouTube URL when the caller left them empty.
func (r *PressRepo) Create(ctx context.Context, p models.PressItem) (string, error) {
	switch p.Type {
	case models.PressArticle:
		if p.Slug == "" {
			p.Slug = transform.Slug(p.Title)
		}
	case models.PressVideo:
		if p.YouTubeID == "" {
			id, ok := transform.YouTubeID(p.YouTubeURL)
			if !ok {
				return "", fmt.Errorf("press item %q: unrecognized YouTube URL %q", p.Title, p.YouTubeURL)
			}
			p.YouTubeID = id
		}
	default:
		return "", fmt.Errorf("press item %q: unknown type %q", p.Title, p.Type)
	}
	return r.activeRepo.Create(ctx, p)
}

// Update applies a typed partial update, re-deriving the video id when the
// YouTube URL changes.
func (r *PressRepo) Update(ctx context.Context, id string, u models.PressItemUpdate) error {
	if u.YouTubeURL != nil && u.YouTubeID == nil {
		vid, ok := transform.YouTubeID(*u.YouTubeURL)
		if !ok {
			return fmt.Errorf("press item %s: unrecognized YouTube URL %q", id, *u.YouTubeURL)
		}
		u.YouTubeID = &vid
	}
	return r.update(ctx, id, u)
}

// CelebrityRepo persists celebrity supporter cards.
type CelebrityRepo struct {
	activeRepo[models.CelebrityCard]
}

func newCelebrityRepo(s store.DocStore, now Clock) *CelebrityRepo {
	return &CelebrityRepo{activeRepo[models.CelebrityCard]{
		s:          s,
		now:        now,
		collection: ColCelebrities,
		kind:       "celebrity",
		active:     func(c models.CelebrityCard) bool { return c.IsActive },
		dates:      func(c models.CelebrityCard) (string, string) { return c.CreatedAt, c.CreatedAt },
	}}
}

// Update applies a typed partial update.
func (r *CelebrityRepo) Update(ctx context.Context, id string, u models.CelebrityCardUpdate) error {
	return r.update(ctx, id, u)
}

// TestimonialRepo persists testimonial quotes.
type TestimonialRepo struct {
	activeRepo[models.Testimonial]
}

func newTestimonialRepo(s store.DocStore, now Clock) *TestimonialRepo {
	return &TestimonialRepo{activeRepo[models.Testimonial]{
		s:          s,
		now:        now,
		collection: ColTestimonials,
		kind:       "testimonial",
		active:     func(t models.Testimonial) bool { return t.IsActive },
		dates:      func(t models.Testimonial) (string, string) { return t.CreatedAt, t.CreatedAt },
	}}
}

// Update applies a typed partial update.
func (r *TestimonialRepo) Update(ctx context.Context, id string, u models.TestimonialUpdate) error {
	return r.update(ctx, id, u)
}
