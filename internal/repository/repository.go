// Package repository implements the per-entity persistence facades over a
// DocStore. All operations are context-aware and stateless: a Repos value
// is constructed from an explicit store handle (obtained via
// backend.Guard.EnsureReady) rather than module-level singletons.
package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sikhaidindia/backend/internal/models"
	"github.com/sikhaidindia/backend/internal/store"
)

// Collection names in Firestore.
const (
	ColBlogs        = "blogs"
	ColCampaigns    = "campaigns"
	ColPress        = "press_items"
	ColCelebrities  = "celebrity_cards"
	ColTestimonials = "testimonials"
	ColContacts     = "contact_submissions"
	ColVolunteers   = "volunteer_submissions"
	ColCSR          = "csr_submissions"
	ColDonations    = "donations"
	ColMedia        = "media"
)

// Clock supplies "now"; tests pin it.
type Clock func() time.Time

// Repos bundles every entity facade over one store handle.
type Repos struct {
	Blogs        *BlogRepo
	Campaigns    *CampaignRepo
	Press        *PressRepo
	Celebrities  *CelebrityRepo
	Testimonials *TestimonialRepo
	Contacts     *LeadRepo[models.ContactSubmission]
	Volunteers   *LeadRepo[models.VolunteerSubmission]
	CSR          *LeadRepo[models.CSRSubmission]
	Donations    *DonationRepo
}

// Option configures Repos construction.
type Option func(*options)

type options struct {
	now Clock
}

// WithClock pins the timestamp source.
func WithClock(now Clock) Option {
	return func(o *options) { o.now = now }
}

// New builds the facades over the given store.
func New(s store.DocStore, opts ...Option) *Repos {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repos{
		Blogs:        newBlogRepo(s, o.now),
		Campaigns:    newCampaignRepo(s, o.now),
		Press:        newPressRepo(s, o.now),
		Celebrities:  newCelebrityRepo(s, o.now),
		Testimonials: newTestimonialRepo(s, o.now),
		Contacts: newLeadRepo[models.ContactSubmission](s, o.now, ColContacts, "contact",
			func(c models.ContactSubmission) (string, string) { return c.Timestamp, c.CreatedAt }),
		Volunteers: newLeadRepo[models.VolunteerSubmission](s, o.now, ColVolunteers, "volunteer",
			func(v models.VolunteerSubmission) (string, string) { return v.Timestamp, v.CreatedAt }),
		CSR: newLeadRepo[models.CSRSubmission](s, o.now, ColCSR, "csr",
			func(c models.CSRSubmission) (string, string) { return c.Timestamp, c.CreatedAt }),
		Donations: newDonationRepo(s, o.now),
	}
}

func timestamp(now Clock) string {
	return now().UTC().Format(time.RFC3339)
}

// encodeFields flattens an entity into its persisted field map, dropping
// the server-owned identifier and the write timestamps (those are stamped
// by the create/update paths). A caller-supplied publishedAt survives so
// migrations can preserve original publish dates. The input record is
// never mutated.
func encodeFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode record fields: %w", err)
	}
	delete(m, "id")
	delete(m, "createdAt")
	delete(m, "updatedAt")
	return m, nil
}

// normalizeFields round-trips a field map through JSON so typed values
// (enum strings, nested structs) are stored in the same plain shape the
// create path produces.
func normalizeFields(m map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode update fields: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode update fields: %w", err)
	}
	return out, nil
}

func decodeAll[T any](docs []store.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := store.Decode(doc, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
