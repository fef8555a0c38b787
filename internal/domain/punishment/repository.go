package punishment

import "context"

type Repository interface {
	List(ctx context.Context) ([]Punishment, error)
	GetByID(ctx context.Context, id string) (Punishment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Punishment, error)
	ListByStatus(ctx context.Context, status Status) ([]Punishment, error)
	ListByRange(ctx context.Context, startDate, endDate string) ([]Punishment, error)
	Create(ctx context.Context, p Punishment) (Punishment, error)
	Update(ctx context.Context, p Punishment) (Punishment, error)
	Delete(ctx context.Context, id string) error
}
