package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
)

type punishmentRepository struct {
	store kvstore.Store
}

func NewPunishmentRepository(store kvstore.Store) punishment.Repository {
	return &punishmentRepository{store: store}
}

func (r *punishmentRepository) List(ctx context.Context) ([]punishment.Punishment, error) {
	var punishments []punishment.Punishment
	if err := loadCollection(ctx, r.store, collectionPunishments, &punishments); err != nil {
		return nil, err
	}
	return punishments, nil
}

func (r *punishmentRepository) GetByID(ctx context.Context, id string) (punishment.Punishment, error) {
	punishments, err := r.List(ctx)
	if err != nil {
		return punishment.Punishment{}, err
	}
	for _, p := range punishments {
		if p.ID == id {
			return p, nil
		}
	}
	return punishment.Punishment{}, punishment.ErrPunishmentNotFound
}

func (r *punishmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]punishment.Punishment, error) {
	return r.filter(ctx, func(p punishment.Punishment) bool {
		return p.EmployeeID == employeeID
	})
}

func (r *punishmentRepository) ListByStatus(ctx context.Context, status punishment.Status) ([]punishment.Punishment, error) {
	return r.filter(ctx, func(p punishment.Punishment) bool {
		return p.Status == status
	})
}

func (r *punishmentRepository) ListByRange(ctx context.Context, startDate, endDate string) ([]punishment.Punishment, error) {
	return r.filter(ctx, func(p punishment.Punishment) bool {
		return p.Date >= startDate && p.Date <= endDate
	})
}

func (r *punishmentRepository) filter(ctx context.Context, match func(punishment.Punishment) bool) ([]punishment.Punishment, error) {
	punishments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []punishment.Punishment
	for _, p := range punishments {
		if match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *punishmentRepository) Create(ctx context.Context, p punishment.Punishment) (punishment.Punishment, error) {
	punishments, err := r.List(ctx)
	if err != nil {
		return punishment.Punishment{}, err
	}

	if p.ID == "" {
		p.ID = "pun-" + uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	punishments = append(punishments, p)
	if err := saveCollection(ctx, r.store, collectionPunishments, punishments); err != nil {
		return punishment.Punishment{}, err
	}
	return p, nil
}

func (r *punishmentRepository) Update(ctx context.Context, p punishment.Punishment) (punishment.Punishment, error) {
	punishments, err := r.List(ctx)
	if err != nil {
		return punishment.Punishment{}, err
	}

	for i := range punishments {
		if punishments[i].ID == p.ID {
			punishments[i] = p
			if err := saveCollection(ctx, r.store, collectionPunishments, punishments); err != nil {
				return punishment.Punishment{}, err
			}
			return p, nil
		}
	}
	return punishment.Punishment{}, punishment.ErrPunishmentNotFound
}

func (r *punishmentRepository) Delete(ctx context.Context, id string) error {
	punishments, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := punishments[:0]
	for _, p := range punishments {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(punishments) {
		return punishment.ErrPunishmentNotFound
	}
	return saveCollection(ctx, r.store, collectionPunishments, kept)
}
