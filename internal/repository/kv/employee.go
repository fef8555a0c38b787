package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
)

type employeeRepository struct {
	store kvstore.Store
}

func NewEmployeeRepository(store kvstore.Store) employee.Repository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := loadCollection(ctx, r.store, collectionEmployees, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	employees, err := r.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, e := range employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) Find(ctx context.Context, match func(employee.Employee) bool) ([]employee.Employee, error) {
	employees, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []employee.Employee
	for _, e := range employees {
		if match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	employees, err := r.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	if e.ID == "" {
		e.ID = "emp-" + uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	employees = append(employees, e)
	if err := saveCollection(ctx, r.store, collectionEmployees, employees); err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	employees, err := r.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	for i := range employees {
		if employees[i].ID == e.ID {
			employees[i] = e
			if err := saveCollection(ctx, r.store, collectionEmployees, employees); err != nil {
				return employee.Employee{}, err
			}
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	employees, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := employees[:0]
	for _, e := range employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(employees) {
		return employee.ErrEmployeeNotFound
	}
	return saveCollection(ctx, r.store, collectionEmployees, kept)
}

func (r *employeeRepository) Replace(ctx context.Context, employees []employee.Employee) error {
	for i := range employees {
		if employees[i].ID == "" {
			employees[i].ID = "emp-" + uuid.NewString()
		}
		if employees[i].CreatedAt.IsZero() {
			employees[i].CreatedAt = time.Now()
		}
	}
	return saveCollection(ctx, r.store, collectionEmployees, employees)
}
