package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikhaidindia/backend/internal/migration/seed"
	"github.com/sikhaidindia/backend/internal/repository"
	"github.com/sikhaidindia/backend/internal/store"
)

func TestMigrateBlogs(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	r := NewRunner(s)

	res, err := r.MigrateBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.ColBlogs, res.Collection)
	assert.Equal(t, len(seed.Blogs), res.Migrated)
	assert.Zero(t, res.Failed)
	assert.False(t, res.Skipped)

	blogs, err := repository.New(s).Blogs.ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, len(seed.Blogs))
}

func TestMigrateBlogsPreservesPublishDates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	_, err := NewRunner(s).MigrateBlogs(ctx)
	require.NoError(t, err)

	got, err := repository.New(s).Blogs.GetBySlug(ctx, "volunteers-stories-from-heart")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-20T00:00:00Z", got.PublishedAt)
}

func TestMigrateSkipsPopulatedCollection(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	_, err := s.Add(ctx, repository.ColBlogs, map[string]any{"title": "existing"})
	require.NoError(t, err)

	res, err := NewRunner(s).MigrateBlogs(ctx)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Zero(t, res.Migrated)

	docs, err := s.List(ctx, repository.ColBlogs)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMigrateAll(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()

	results, err := NewRunner(s).MigrateAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 5)

	total := 0
	for _, res := range results {
		assert.Zero(t, res.Failed, res.Collection)
		total += res.Migrated
	}
	want := len(seed.Blogs) + len(seed.Campaigns) + len(seed.PressArticles) +
		len(seed.Celebrities) + len(seed.Testimonials)
	assert.Equal(t, want, total)
}

func TestMigrateAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemStore()
	r := NewRunner(s)

	_, err := r.MigrateAll(ctx)
	require.NoError(t, err)
	results, err := r.MigrateAll(ctx)
	require.NoError(t, err)

	for _, res := range results {
		assert.True(t, res.Skipped, res.Collection)
	}
}

// flakyStore fails a fixed number of Add calls before behaving normally.
type flakyStore struct {
	store.DocStore
	failures int
}

func (f *flakyStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	if f.failures > 0 {
		f.failures--
		return "", errors.New("simulated write failure")
	}
	return f.DocStore.Add(ctx, collection, data)
}

func TestMigrateTalliesItemFailuresWithoutAborting(t *testing.T) {
	ctx := context.Background()
	s := &flakyStore{DocStore: store.NewMemStore(), failures: 2}

	res, err := NewRunner(s).MigrateBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, len(seed.Blogs)-2, res.Migrated)
	assert.Len(t, res.Errors, 2)
}

// brokenStore fails the Any probe.
type brokenStore struct {
	store.DocStore
}

func (brokenStore) Any(context.Context, string) (bool, error) {
	return false, errors.New("probe failed")
}

func TestMigrateProbeFailureAborts(t *testing.T) {
	s := brokenStore{DocStore: store.NewMemStore()}
	_, err := NewRunner(s).MigrateBlogs(context.Background())
	assert.Error(t, err)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "blogs: skipped (already populated)",
		Result{Collection: "blogs", Skipped: true}.String())
	assert.Equal(t, "blogs: 6 migrated, 1 failed",
		Result{Collection: "blogs", Migrated: 6, Failed: 1}.String())
}
