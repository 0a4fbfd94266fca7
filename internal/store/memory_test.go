package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreAddGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	id, err := s.Add(ctx, "blogs", map[string]any{"title": "First"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := s.Get(ctx, "blogs", id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "First", doc.Data["title"])
}

func TestMemStoreGetMissing(t *testing.T) {
	s := NewMemStore()
	_, err := s.Get(context.Background(), "blogs", "nope")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "blogs", nf.Collection)
	assert.Equal(t, "nope", nf.ID)
	assert.True(t, IsNotFound(err))
}

func TestMemStoreListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		id, err := s.Add(ctx, "blogs", map[string]any{"title": title})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	docs, err := s.List(ctx, "blogs")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i, doc := range docs {
		assert.Equal(t, ids[i], doc.ID)
	}
}

func TestMemStoreListWhere(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	_, err := s.Add(ctx, "blogs", map[string]any{"slug": "a", "publishStatus": "published"})
	require.NoError(t, err)
	_, err = s.Add(ctx, "blogs", map[string]any{"slug": "b", "publishStatus": "draft"})
	require.NoError(t, err)

	docs, err := s.ListWhere(ctx, "blogs", "publishStatus", "published")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].Data["slug"])

	docs, err = s.ListWhere(ctx, "blogs", "publishStatus", "archived")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemStoreUpdateMerges(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	id, err := s.Add(ctx, "blogs", map[string]any{"title": "Old", "author": "A"})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, "blogs", id, map[string]any{"title": "New"}))

	doc, err := s.Get(ctx, "blogs", id)
	require.NoError(t, err)
	assert.Equal(t, "New", doc.Data["title"])
	assert.Equal(t, "A", doc.Data["author"])
}

func TestMemStoreUpdateMissing(t *testing.T) {
	s := NewMemStore()
	err := s.Update(context.Background(), "blogs", "nope", map[string]any{"title": "x"})
	assert.True(t, IsNotFound(err))
}

func TestMemStoreDeleteIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	id, err := s.Add(ctx, "blogs", map[string]any{"title": "x"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "blogs", id))
	_, err = s.Get(ctx, "blogs", id)
	assert.True(t, IsNotFound(err))

	// Deleting again is not an error.
	assert.NoError(t, s.Delete(ctx, "blogs", id))
}

func TestMemStoreAny(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	ok, err := s.Any(ctx, "blogs")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Add(ctx, "blogs", map[string]any{"title": "x"})
	require.NoError(t, err)

	ok, err = s.Any(ctx, "blogs")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemStoreCopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	in := map[string]any{"title": "x"}
	id, err := s.Add(ctx, "blogs", in)
	require.NoError(t, err)

	in["title"] = "mutated"
	doc, err := s.Get(ctx, "blogs", id)
	require.NoError(t, err)
	assert.Equal(t, "x", doc.Data["title"])

	doc.Data["title"] = "mutated again"
	doc2, err := s.Get(ctx, "blogs", id)
	require.NoError(t, err)
	assert.Equal(t, "x", doc2.Data["title"])
}

func TestDecode(t *testing.T) {
	type rec struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	var v rec
	err := Decode(Document{ID: "abc", Data: map[string]any{"title": "x"}}, &v)
	require.NoError(t, err)
	assert.Equal(t, rec{ID: "abc", Title: "x"}, v)
}
