package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sikhaidindia/backend/internal/models"
	"github.com/sikhaidindia/backend/internal/store"
	"github.com/sikhaidindia/backend/internal/transform"
)

// LeadRepo persists form submissions (contact, volunteer, CSR). Every new
// lead enters with status "new" and a submission timestamp; the admin panel
// walks it through read/resolved.
type LeadRepo[T any] struct {
	s          store.DocStore
	now        Clock
	collection string
	kind       string
	dates      func(T) (primary, fallback string)
}

func newLeadRepo[T any](s store.DocStore, now Clock, collection, kind string, dates func(T) (string, string)) *LeadRepo[T] {
	return &LeadRepo[T]{s: s, now: now, collection: collection, kind: kind, dates: dates}
}

// Create stamps the submission time and initial status, then persists the
// lead. The caller's record is not mutated.
func (r *LeadRepo[T]) Create(ctx context.Context, lead T) (string, error) {
	fields, err := encodeFields(lead)
	if err != nil {
		return "", err
	}
	ts := timestamp(r.now)
	fields["timestamp"] = ts
	fields["status"] = string(models.LeadNew)
	fields["createdAt"] = ts
	fields["updatedAt"] = ts
	id, err := r.s.Add(ctx, r.collection, transform.StripAbsentFields(fields))
	if err != nil {
		slog.Error("Create failed", "kind", r.kind, "error", err)
		return "", err
	}
	return id, nil
}

// GetByID returns one lead or a *store.NotFoundError.
func (r *LeadRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
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

// List returns all leads, newest submissions first (admin panel view).
func (r *LeadRepo[T]) List(ctx context.Context) ([]T, error) {
	docs, err := r.s.List(ctx, r.collection)
	if err != nil {
		slog.Error("List failed", "kind", r.kind, "error", err)
		return nil, err
	}
	leads, err := decodeAll[T](docs)
	if err != nil {
		return nil, err
	}
	transform.SortByEffectiveDate(leads, r.dates)
	return leads, nil
}

// UpdateStatus moves a lead between new/read/resolved.
func (r *LeadRepo[T]) UpdateStatus(ctx context.Context, id string, status models.LeadStatus) error {
	switch status {
	case models.LeadNew, models.LeadRead, models.LeadResolved:
	default:
		return fmt.Errorf("%s %s: invalid status %q", r.kind, id, status)
	}
	fields := map[string]any{
		"status":    string(status),
		"updatedAt": timestamp(r.now),
	}
	if err := r.s.Update(ctx, r.collection, id, fields); err != nil {
		if !store.IsNotFound(err) {
			slog.Error("Status update failed", "kind", r.kind, "id", id, "error", err)
		}
		return err
	}
	return nil
}
