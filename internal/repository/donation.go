package repository

import (
	"context"
	"log/slog"

	"github.com/sikhaidindia/backend/internal/models"
	"github.com/sikhaidindia/backend/internal/store"
	"github.com/sikhaidindia/backend/internal/transform"
)

// DonationRepo records completed donations keyed by the payment id the
// checkout widget returned.
type DonationRepo struct {
	s   store.DocStore
	now Clock
}

func newDonationRepo(s store.DocStore, now Clock) *DonationRepo {
	return &DonationRepo{s: s, now: now}
}

// Create persists one donation record and returns its id.
func (r *DonationRepo) Create(ctx context.Context, d models.Donation) (string, error) {
	fields, err := encodeFields(d)
	if err != nil {
		return "", err
	}
	ts := timestamp(r.now)
	fields["createdAt"] = ts
	fields["updatedAt"] = ts
	id, err := r.s.Add(ctx, ColDonations, transform.StripAbsentFields(fields))
	if err != nil {
		slog.Error("Create failed", "kind", "donation", "error", err)
		return "", err
	}
	return id, nil
}

// GetByID returns one donation or a *store.NotFoundError.
func (r *DonationRepo) GetByID(ctx context.Context, id string) (models.Donation, error) {
	var d models.Donation
	doc, err := r.s.Get(ctx, ColDonations, id)
	if err != nil {
		return d, err
	}
	if err := store.Decode(doc, &d); err != nil {
		return d, err
	}
	return d, nil
}

// List returns all donations, newest first.
func (r *DonationRepo) List(ctx context.Context) ([]models.Donation, error) {
	docs, err := r.s.List(ctx, ColDonations)
	if err != nil {
		slog.Error("List failed", "kind", "donation", "error", err)
		return nil, err
	}
	donations, err := decodeAll[models.Donation](docs)
	if err != nil {
		return nil, err
	}
	transform.SortByEffectiveDate(donations, func(d models.Donation) (string, string) {
		return d.CreatedAt, d.CreatedAt
	})
	return donations, nil
}
