package employee

import "context"

// Repository defines data access for the employees collection. The backing
// store holds the whole collection as one document, so every method is a
// full read (and, for writers, a full write-back).
type Repository interface {
	// List returns all employees in insertion order.
	List(ctx context.Context) ([]Employee, error)

	// GetByID returns ErrEmployeeNotFound when no employee has the id.
	GetByID(ctx context.Context, id string) (Employee, error)

	// Find returns the employees matching the predicate, in insertion order.
	Find(ctx context.Context, predicate func(Employee) bool) ([]Employee, error)

	// Create assigns a fresh id and creation timestamp when they are unset,
	// appends the record, and returns it.
	Create(ctx context.Context, e Employee) (Employee, error)

	// Update replaces the stored record with the same id.
	// Returns ErrEmployeeNotFound when the id is unknown.
	Update(ctx context.Context, e Employee) (Employee, error)

	// Delete removes the record by id. Returns ErrEmployeeNotFound when
	// nothing was removed.
	Delete(ctx context.Context, id string) error

	// Replace swaps the entire collection, keeping the given records as-is.
	// Used by bulk import.
	Replace(ctx context.Context, employees []Employee) error
}
