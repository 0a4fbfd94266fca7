package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore is the production DocStore over a live Firestore client.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, &NotFoundError{Collection: collection, ID: id}
	}
	if err != nil {
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) List(ctx context.Context, collection string) ([]Document, error) {
	return s.collect(collection, s.client.Collection(collection).Documents(ctx))
}

func (s *FirestoreStore) ListWhere(ctx context.Context, collection, field string, value any) ([]Document, error) {
	it := s.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	return s.collect(collection, it)
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, data map[string]any) error {
	updates := make([]firestore.Update, 0, len(data))
	for k, v := range data {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return &NotFoundError{Collection: collection, ID: id}
	}
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	// Firestore deletes are no-ops for missing documents; kept as-is so
	// racing admin deletes never surface spurious errors.
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Any(ctx context.Context, collection string) (bool, error) {
	it := s.client.Collection(collection).Limit(1).Documents(ctx)
	defer it.Stop()
	_, err := it.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", collection, err)
	}
	return true, nil
}

func (s *FirestoreStore) collect(collection string, it *firestore.DocumentIterator) ([]Document, error) {
	defer it.Stop()
	var docs []Document
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}
