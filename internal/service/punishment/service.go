package punishment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/domain/settings"
)

type service struct {
	punishmentRepo punishment.Repository
	employeeRepo   employee.Repository
	settingsRepo   settings.Repository
	activityRepo   activity.Repository
	now            func() time.Time
}

func NewService(
	punishmentRepo punishment.Repository,
	employeeRepo employee.Repository,
	settingsRepo settings.Repository,
	activityRepo activity.Repository,
) punishment.Service {
	return &service{
		punishmentRepo: punishmentRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
		activityRepo:   activityRepo,
		now:            time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]punishment.Punishment, error) {
	return s.punishmentRepo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (punishment.Punishment, error) {
	return s.punishmentRepo.GetByID(ctx, id)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]punishment.Punishment, error) {
	return s.punishmentRepo.ListByEmployee(ctx, employeeID)
}

func (s *service) Create(ctx context.Context, req punishment.CreatePunishmentRequest) (punishment.Punishment, error) {
	if err := req.Validate(); err != nil {
		return punishment.Punishment{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return punishment.Punishment{}, err
	}

	p := punishment.Punishment{
		EmployeeID:  req.EmployeeID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        req.Date,
		Status:      req.Status,
		Description: req.Description,
		CreatedAt:   s.now(),
	}
	if p.Status == "" {
		p.Status = punishment.StatusActive
	}

	created, err := s.punishmentRepo.Create(ctx, p)
	if err != nil {
		return punishment.Punishment{}, err
	}

	s.logActivity(ctx, activity.TypePunishmentCreated, created.ID,
		fmt.Sprintf("%s received a %s punishment", emp.FullName(), s.typeName(ctx, created.Type)))

	return created, nil
}

func (s *service) Update(ctx context.Context, id string, req punishment.UpdatePunishmentRequest) (punishment.Punishment, error) {
	if err := req.Validate(); err != nil {
		return punishment.Punishment{}, err
	}

	p, err := s.punishmentRepo.GetByID(ctx, id)
	if err != nil {
		return punishment.Punishment{}, err
	}

	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if req.Status != nil {
		p.Status = *req.Status
		if p.Status == punishment.StatusCompleted && p.CompletedAt == nil {
			completedAt := s.now()
			p.CompletedAt = &completedAt
		}
	}
	if req.Description != nil {
		p.Description = *req.Description
	}

	updated, err := s.punishmentRepo.Update(ctx, p)
	if err != nil {
		return punishment.Punishment{}, err
	}

	s.logActivity(ctx, activity.TypePunishmentUpdated, updated.ID,
		fmt.Sprintf("A %s punishment was updated", s.typeName(ctx, updated.Type)))

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.punishmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.punishmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, activity.TypePunishmentDeleted, id,
		fmt.Sprintf("A %s punishment was removed", s.typeName(ctx, p.Type)))

	return nil
}

func (s *service) Complete(ctx context.Context, id string) (punishment.Punishment, error) {
	p, err := s.punishmentRepo.GetByID(ctx, id)
	if err != nil {
		return punishment.Punishment{}, err
	}

	completedAt := s.now()
	p.Status = punishment.StatusCompleted
	p.CompletedAt = &completedAt

	updated, err := s.punishmentRepo.Update(ctx, p)
	if err != nil {
		return punishment.Punishment{}, err
	}

	s.logActivity(ctx, activity.TypePunishmentDone, updated.ID,
		fmt.Sprintf("A %s punishment was completed", s.typeName(ctx, updated.Type)))

	return updated, nil
}

func (s *service) Statistics(ctx context.Context) (punishment.Statistics, error) {
	punishments, err := s.punishmentRepo.List(ctx)
	if err != nil {
		return punishment.Statistics{}, err
	}

	stats := punishment.Statistics{
		Total:        len(punishments),
		ByType:       make(map[string]int),
		TotalAmount:  decimal.Zero,
		ActiveAmount: decimal.Zero,
	}
	for _, p := range punishments {
		stats.ByType[p.Type]++
		stats.TotalAmount = stats.TotalAmount.Add(p.Amount)
		switch p.Status {
		case punishment.StatusActive:
			stats.ByStatus.Active++
			stats.ActiveAmount = stats.ActiveAmount.Add(p.Amount)
		case punishment.StatusPending:
			stats.ByStatus.Pending++
		case punishment.StatusCompleted:
			stats.ByStatus.Completed++
		}
	}

	return stats, nil
}

func (s *service) ChartData(ctx context.Context) (punishment.ChartData, error) {
	punishments, err := s.punishmentRepo.List(ctx)
	if err != nil {
		return punishment.ChartData{}, err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return punishment.ChartData{}, err
	}

	return buildChartData(punishments, cfg.PunishmentRules), nil
}

func (s *service) EmployeeDeductions(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	punishments, err := s.punishmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range punishments {
		if p.Status == punishment.StatusActive {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (s *service) typeName(ctx context.Context, typ string) string {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return typ
	}
	if rule, ok := cfg.RuleByID(typ); ok {
		return rule.Name
	}
	return typ
}

// logActivity is best effort: a failed append never fails the operation
// that triggered it.
func (s *service) logActivity(ctx context.Context, typ activity.Type, entityID, description string) {
	_, _ = s.activityRepo.Append(ctx, activity.Entry{
		Type:        typ,
		Description: description,
		EntityID:    entityID,
		Timestamp:   s.now(),
	})
}
