package attendance

import "context"

type Repository interface {
	List(ctx context.Context) ([]Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByRange(ctx context.Context, startDate, endDate string) ([]Attendance, error)
	Create(ctx context.Context, record Attendance) (Attendance, error)
	Update(ctx context.Context, record Attendance) (Attendance, error)
	Delete(ctx context.Context, id string) error
}
