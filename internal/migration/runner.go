// Package migration imports the static launch content into Firestore.
// Each importer is idempotent at the collection level: a non-empty target
// collection is skipped so reruns never duplicate content. Individual item
// failures are tallied, not fatal, so one bad record never blocks the rest.
package migration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sikhaidindia/backend/internal/migration/seed"
	"github.com/sikhaidindia/backend/internal/repository"
	"github.com/sikhaidindia/backend/internal/store"
)

// Result tallies one collection import.
type Result struct {
	Collection string
	Migrated   int
	Failed     int
	Skipped    bool
	Errors     []error
}

func (r Result) String() string {
	if r.Skipped {
		return fmt.Sprintf("%s: skipped (already populated)", r.Collection)
	}
	return fmt.Sprintf("%s: %d migrated, %d failed", r.Collection, r.Migrated, r.Failed)
}

// Runner drives the seed imports over one store handle.
type Runner struct {
	s     store.DocStore
	repos *repository.Repos
}

// NewRunner builds a runner over the given store.
func NewRunner(s store.DocStore, opts ...repository.Option) *Runner {
	return &Runner{s: s, repos: repository.New(s, opts...)}
}

// migrate runs one collection import: skip when the collection already
// holds documents, otherwise create every seed item and tally the outcome.
func migrate[T any](ctx context.Context, r *Runner, collection string, items []T, create func(context.Context, T) (string, error)) (Result, error) {
	res := Result{Collection: collection}
	populated, err := r.s.Any(ctx, collection)
	if err != nil {
		return res, fmt.Errorf("probe %s: %w", collection, err)
	}
	if populated {
		res.Skipped = true
		slog.Info("Collection already populated, skipping", "collection", collection)
		return res, nil
	}
	for _, item := range items {
		id, err := create(ctx, item)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, err)
			slog.Error("Seed item failed", "collection", collection, "error", err)
			continue
		}
		res.Migrated++
		slog.Info("Seed item migrated", "collection", collection, "id", id)
	}
	return res, nil
}

// MigrateBlogs imports the launch blog posts.
func (r *Runner) MigrateBlogs(ctx context.Context) (Result, error) {
	return migrate(ctx, r, repository.ColBlogs, seed.Blogs, r.repos.Blogs.Create)
}

// MigrateCampaigns imports the launch campaign pages.
func (r *Runner) MigrateCampaigns(ctx context.Context) (Result, error) {
	return migrate(ctx, r, repository.ColCampaigns, seed.Campaigns, r.repos.Campaigns.Create)
}

// MigratePress imports the launch press coverage.
func (r *Runner) MigratePress(ctx context.Context) (Result, error) {
	return migrate(ctx, r, repository.ColPress, seed.PressArticles, r.repos.Press.Create)
}

// MigrateContent imports the celebrity cards and testimonials. The two
// collections are probed and tallied independently.
func (r *Runner) MigrateContent(ctx context.Context) ([]Result, error) {
	celebs, err := migrate(ctx, r, repository.ColCelebrities, seed.Celebrities, r.repos.Celebrities.Create)
	if err != nil {
		return nil, err
	}
	quotes, err := migrate(ctx, r, repository.ColTestimonials, seed.Testimonials, r.repos.Testimonials.Create)
	if err != nil {
		return []Result{celebs}, err
	}
	return []Result{celebs, quotes}, nil
}

// MigrateAll runs every importer in order and returns the per-collection
// results. A probe failure aborts; item failures do not.
func (r *Runner) MigrateAll(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, step := range []func(context.Context) (Result, error){
		r.MigrateBlogs,
		r.MigrateCampaigns,
		r.MigratePress,
	} {
		res, err := step(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	content, err := r.MigrateContent(ctx)
	results = append(results, content...)
	if err != nil {
		return results, err
	}
	return results, nil
}
