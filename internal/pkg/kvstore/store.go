package kvstore

import (
	"context"
	"errors"
)

// Store is the whole-collection persistence contract. A collection is an
// opaque JSON document, usually an array of records. Callers read the full
// document, apply their change, and write the full document back; the last
// write wins. Implementations must not offer indexing, partial updates, or
// query capability beyond this.
type Store interface {
	// Read returns the raw JSON document for a collection, or
	// ErrCollectionNotFound when the collection has never been written.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the full document for a collection, creating it if
	// necessary.
	Write(ctx context.Context, name string, data []byte) error

	// Delete removes a collection. Deleting a missing collection is a no-op.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored collections.
	List(ctx context.Context) ([]string, error)
}

var ErrCollectionNotFound = errors.New("collection not found")
