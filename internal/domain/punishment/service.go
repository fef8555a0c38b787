package punishment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context) ([]Punishment, error)
	Get(ctx context.Context, id string) (Punishment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Punishment, error)
	Create(ctx context.Context, req CreatePunishmentRequest) (Punishment, error)
	Update(ctx context.Context, id string, req UpdatePunishmentRequest) (Punishment, error)
	Delete(ctx context.Context, id string) error

	// Complete marks the punishment completed and stamps CompletedAt.
	Complete(ctx context.Context, id string) (Punishment, error)

	Statistics(ctx context.Context) (Statistics, error)
	ChartData(ctx context.Context) (ChartData, error)

	// EmployeeDeductions sums the active punishment amounts charged to
	// one employee.
	EmployeeDeductions(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
