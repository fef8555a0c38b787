package attendance

import "context"

type Service interface {
	List(ctx context.Context) ([]Attendance, error)
	Get(ctx context.Context, id string) (Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	Record(ctx context.Context, req RecordAttendanceRequest) (Attendance, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (Attendance, error)
	Delete(ctx context.Context, id string) error

	// MarkDate records or overwrites each entry's status for the given
	// date. An employee with an existing record for that date is updated
	// in place rather than duplicated. Returned records follow the input
	// entry order.
	MarkDate(ctx context.Context, req MarkDateRequest) ([]Attendance, error)

	// DateStatistics aggregates the inclusive window; an empty endDate
	// means the single day named by startDate.
	DateStatistics(ctx context.Context, startDate, endDate string) (DateStatistics, error)
	Overview(ctx context.Context, period Period) (Overview, error)
	// EmployeeSummary aggregates one employee's records, optionally
	// bounded by an inclusive date window (empty bounds are open).
	EmployeeSummary(ctx context.Context, employeeID, startDate, endDate string) (EmployeeSummary, error)
}
