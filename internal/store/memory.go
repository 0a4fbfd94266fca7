package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// MemStore is an in-memory DocStore with the same contract as the Firestore
// implementation. It backs the test suites and migration dry runs.
type MemStore struct {
	mu    sync.RWMutex
	cols  map[string]map[string]map[string]any
	order map[string][]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		cols:  map[string]map[string]map[string]any{},
		order: map[string][]string{},
	}
}

func (s *MemStore) Add(_ context.Context, collection string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cols[collection] == nil {
		s.cols[collection] = map[string]map[string]any{}
	}
	id := newID()
	s.cols[collection][id] = copyFields(data)
	s.order[collection] = append(s.order[collection], id)
	return id, nil
}

func (s *MemStore) Get(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.cols[collection][id]
	if !ok {
		return Document{}, &NotFoundError{Collection: collection, ID: id}
	}
	return Document{ID: id, Data: copyFields(data)}, nil
}

func (s *MemStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []Document
	for _, id := range s.order[collection] {
		if data, ok := s.cols[collection][id]; ok {
			docs = append(docs, Document{ID: id, Data: copyFields(data)})
		}
	}
	return docs, nil
}

func (s *MemStore) ListWhere(_ context.Context, collection, field string, value any) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []Document
	for _, id := range s.order[collection] {
		data, ok := s.cols[collection][id]
		if !ok {
			continue
		}
		if got, ok := data[field]; ok && got == value {
			docs = append(docs, Document{ID: id, Data: copyFields(data)})
		}
	}
	return docs, nil
}

func (s *MemStore) Update(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.cols[collection][id]
	if !ok {
		return &NotFoundError{Collection: collection, ID: id}
	}
	for k, v := range data {
		existing[k] = v
	}
	return nil
}

func (s *MemStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cols[collection], id)
	return nil
}

func (s *MemStore) Any(_ context.Context, collection string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cols[collection]) > 0, nil
}

func copyFields(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func newID() string {
	var b [10]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
