// Package store abstracts the document database behind a small interface:
// collection CRUD with single-field equality filters. The production
// implementation is Firestore; MemStore backs tests and dry runs.
//
// Documents travel as plain field maps, the same shape Firestore hands back,
// with ordering applied by callers in memory (see transform.SortByEffectiveDate).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Document is one stored record with its server-assigned identifier.
type Document struct {
	ID   string
	Data map[string]any
}

// DocStore is the document-database contract the repositories run against.
type DocStore interface {
	// Add writes a new document and returns its server-assigned id.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)
	// Get returns one document or a *NotFoundError.
	Get(ctx context.Context, collection, id string) (Document, error)
	// List returns every document in the collection.
	List(ctx context.Context, collection string) ([]Document, error)
	// ListWhere returns the documents whose field equals value.
	ListWhere(ctx context.Context, collection, field string, value any) ([]Document, error)
	// Update merges the given fields into an existing document. Missing ids
	// yield a *NotFoundError.
	Update(ctx context.Context, collection, id string, data map[string]any) error
	// Delete removes a document. Deleting a missing id is a silent no-op,
	// matching the underlying store's behavior.
	Delete(ctx context.Context, collection, id string) error
	// Any reports whether the collection holds at least one document.
	Any(ctx context.Context, collection string) (bool, error)
}

// NotFoundError signals the logical absence of a record. Callers treat it
// as a normal outcome, not a failure.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s/%s: not found", e.Collection, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Decode maps a document's fields onto a typed record via a JSON
// round-trip, injecting the document id under the "id" key.
func Decode(doc Document, out any) error {
	m := make(map[string]any, len(doc.Data)+1)
	for k, v := range doc.Data {
		m[k] = v
	}
	m["id"] = doc.ID
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return nil
}
