package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sikhaidindia/backend/internal/models"
	"github.com/sikhaidindia/backend/internal/store"
	"github.com/sikhaidindia/backend/internal/transform"
)

// publishedRepo is the shared core for draft/published editorial content
// (blogs and campaigns). Filtering by visibility happens server-side;
// ordering happens locally to avoid composite index requirements.
type publishedRepo[T any] struct {
	s          store.DocStore
	now        Clock
	collection string
	kind       string
	visibility func(T) models.PublishStatus
	dates      func(T) (publishedAt, createdAt string)
}

// Create stamps createdAt/updatedAt to now, sets publishedAt when the
// record is born published (keeping a caller-supplied publishedAt so seed
// imports preserve their original dates), and returns the new id. The
// caller's record is not mutated.
func (r *publishedRepo[T]) Create(ctx context.Context, record T) (string, error) {
	fields, err := encodeFields(record)
	if err != nil {
		return "", err
	}
	ts := timestamp(r.now)
	fields["createdAt"] = ts
	fields["updatedAt"] = ts
	if r.visibility(record) == models.Published {
		if _, ok := fields["publishedAt"]; !ok {
			fields["publishedAt"] = ts
		}
	} else {
		delete(fields, "publishedAt")
	}
	id, err := r.s.Add(ctx, r.collection, transform.StripAbsentFields(fields))
	if err != nil {
		slog.Error("Create failed", "kind", r.kind, "error", err)
		return "", err
	}
	return id, nil
}

// GetByID returns the record regardless of visibility (admin lookups).
// Absence surfaces as a *store.NotFoundError, a normal outcome.
func (r *publishedRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
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

// GetBySlug returns the published record with the given slug. Drafts
// sharing the slug stay hidden from this public-facing lookup. The
// visibility check is in-memory: the slug equality filter runs server-side
// and a compound filter would need a composite index.
func (r *publishedRepo[T]) GetBySlug(ctx context.Context, slug string) (T, error) {
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
		if r.visibility(v) == models.Published {
			return v, nil
		}
	}
	return zero, &store.NotFoundError{Collection: r.collection, ID: slug}
}

// ListAll returns every record, drafts included, newest first (admin).
func (r *publishedRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	docs, err := r.s.List(ctx, r.collection)
	if err != nil {
		slog.Error("List failed", "kind", r.kind, "error", err)
		return nil, err
	}
	records, err := decodeAll[T](docs)
	if err != nil {
		return nil, err
	}
	transform.SortByEffectiveDate(records, func(v T) (string, string) {
		_, created := r.dates(v)
		return created, created
	})
	return records, nil
}

// ListPublished returns the publicly visible records, newest first by
// publish date (falling back to creation date).
func (r *publishedRepo[T]) ListPublished(ctx context.Context) ([]T, error) {
	docs, err := r.s.ListWhere(ctx, r.collection, "publishStatus", string(models.Published))
	if err != nil {
		slog.Error("List published failed", "kind", r.kind, "error", err)
		return nil, err
	}
	records, err := decodeAll[T](docs)
	if err != nil {
		return nil, err
	}
	transform.SortByEffectiveDate(records, r.dates)
	return records, nil
}

// update merges a typed partial-update struct. A draft→published transition
// stamps publishedAt; an already-published record keeps its original
// publishedAt on every subsequent edit.
func (r *publishedRepo[T]) update(ctx context.Context, id string, changes any) error {
	doc, err := r.s.Get(ctx, r.collection, id)
	if err != nil {
		return err
	}
	var current T
	if err := store.Decode(doc, &current); err != nil {
		return err
	}
	fields, err := normalizeFields(transform.StripAbsentStruct(changes))
	if err != nil {
		return err
	}
	fields["updatedAt"] = timestamp(r.now)
	if r.visibility(current) == models.Draft {
		if v, ok := fields["publishStatus"]; ok && v == string(models.Published) {
			fields["publishedAt"] = timestamp(r.now)
		}
	}
	if err := r.s.Update(ctx, r.collection, id, fields); err != nil {
		if !store.IsNotFound(err) {
			slog.Error("Update failed", "kind", r.kind, "id", id, "error", err)
		}
		return err
	}
	return nil
}

// Delete removes the record. Deleting an id that no longer exists is a
// silent no-op, matching the store's semantics (see DESIGN.md).
func (r *publishedRepo[T]) Delete(ctx context.Context, id string) error {
	if err := r.s.Delete(ctx, r.collection, id); err != nil {
		slog.Error("Delete failed", "kind", r.kind, "id", id, "error", err)
		return err
	}
	return nil
}

// BlogRepo persists blog posts.
type BlogRepo struct {
	publishedRepo[models.Blog]
}

func newBlogRepo(s store.DocStore, now Clock) *BlogRepo {
	return &BlogRepo{publishedRepo[models.Blog]{
		s:          s,
		now:        now,
		collection: ColBlogs,
		kind:       "blog",
		visibility: func(b models.Blog) models.PublishStatus { return b.PublishStatus },
		dates:      func(b models.Blog) (string, string) { return b.PublishedAt, b.CreatedAt },
	}}
}

// Create fills in a slug derived from the title when the caller left it
// empty, then stamps and persists the post.
func (r *BlogRepo) Create(ctx context.Context, b models.Blog) (string, error) {
	if b.Slug == "" {
		b.Slug = transform.Slug(b.Title)
	}
	if b.Slug == "" {
		return "", fmt.Errorf("blog %q: empty slug", b.Title)
	}
	return r.publishedRepo.Create(ctx, b)
}

// Update applies a typed partial update.
func (r *BlogRepo) Update(ctx context.Context, id string, u models.BlogUpdate) error {
	return r.update(ctx, id, u)
}

// CampaignRepo persists campaign pages.
type CampaignRepo struct {
	publishedRepo[models.Campaign]
}

func newCampaignRepo(s store.DocStore, now Clock) *CampaignRepo {
	return &CampaignRepo{publishedRepo[models.Campaign]{
		s:          s,
		now:        now,
		collection: ColCampaigns,
		kind:       "campaign",
		visibility: func(c models.Campaign) models.PublishStatus { return c.PublishStatus },
		dates:      func(c models.Campaign) (string, string) { return c.PublishedAt, c.CreatedAt },
	}}
}

// Create fills in a slug derived from the title when absent.
func (r *CampaignRepo) Create(ctx context.Context, c models.Campaign) (string, error) {
	if c.Slug == "" {
		c.Slug = transform.Slug(c.Title)
	}
	if c.Slug == "" {
		return "", fmt.Errorf("campaign %q: empty slug", c.Title)
	}
	return r.publishedRepo.Create(ctx, c)
}

// Update applies a typed partial update.
func (r *CampaignRepo) Update(ctx context.Context, id string, u models.CampaignUpdate) error {
	return r.update(ctx, id, u)
}
