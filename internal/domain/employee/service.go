package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service defines business logic for employee management.
type Service interface {
	List(ctx context.Context) ([]Employee, error)

	Get(ctx context.Context, id string) (Employee, error)

	// Create persists a new employee and appends an activity log entry.
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// Update applies a shallow partial update and appends an activity entry.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes the employee and appends an activity entry. Attendance
	// and punishment records referencing the employee are left in place.
	Delete(ctx context.Context, id string) error

	// Search filters and sorts the collection per the filter.
	Search(ctx context.Context, filter SearchFilter) ([]Employee, error)

	// TotalSalary sums the base salary across all employees.
	TotalSalary(ctx context.Context) (decimal.Decimal, error)

	// ByDepartment groups all employees by their department id.
	ByDepartment(ctx context.Context) (map[string][]Employee, error)

	// Export returns the full collection for backup.
	Export(ctx context.Context) ([]Employee, error)

	// Import replaces the collection with the given records and logs a
	// single import activity entry. Returns the number of imported records.
	Import(ctx context.Context, employees []Employee) (int, error)
}
