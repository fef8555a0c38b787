package activity

import "context"

type Repository interface {
	// List returns entries newest first.
	List(ctx context.Context, limit int) ([]Entry, error)
	Append(ctx context.Context, entry Entry) (Entry, error)
}
