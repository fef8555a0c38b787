package employee

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
)

type service struct {
	employeeRepo employee.Repository
	activityRepo activity.Repository
	now          func() time.Time
}

func NewService(employeeRepo employee.Repository, activityRepo activity.Repository) employee.Service {
	return &service{
		employeeRepo: employeeRepo,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	e := employee.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		StartDate:  req.StartDate,
		Salary:     req.Salary,
		Address:    req.Address,
		Status:     req.Status,
		ImageURL:   req.ImageURL,
		CreatedAt:  s.now(),
	}
	if e.Status == "" {
		e.Status = employee.StatusActive
	}
	if e.StartDate == "" {
		e.StartDate = s.now().Format("2006-01-02")
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.Employee{}, err
	}

	s.logActivity(ctx, activity.TypeEmployeeAdded, created.ID,
		fmt.Sprintf("%s was added to the system", created.FullName()))

	return created, nil
}

func (s *service) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.StartDate != nil {
		e.StartDate = *req.StartDate
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.ImageURL != nil {
		e.ImageURL = *req.ImageURL
	}

	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		return employee.Employee{}, err
	}

	s.logActivity(ctx, activity.TypeEmployeeUpdated, updated.ID,
		fmt.Sprintf("%s's profile was updated", updated.FullName()))

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, activity.TypeEmployeeDeleted, id,
		fmt.Sprintf("%s was removed from the system", e.FullName()))

	return nil
}

func (s *service) Search(ctx context.Context, filter employee.SearchFilter) ([]employee.Employee, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	var out []employee.Employee
	for _, e := range employees {
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		if filter.Department != "" && filter.Department != "all" && e.Department != filter.Department {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(e.Status) != filter.Status {
			continue
		}
		out = append(out, e)
	}

	sortEmployees(out, filter.SortBy)
	return out, nil
}

func matchesQuery(e employee.Employee, query string) bool {
	for _, field := range []string{e.FullName(), e.Email, e.Position} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func sortEmployees(employees []employee.Employee, sortBy string) {
	switch sortBy {
	case "nameAsc":
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].FullName() < employees[j].FullName()
		})
	case "nameDesc":
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].FullName() > employees[j].FullName()
		})
	case "salaryHigh":
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].Salary.GreaterThan(employees[j].Salary)
		})
	case "salaryLow":
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].Salary.LessThan(employees[j].Salary)
		})
	case "recent":
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].CreatedAt.After(employees[j].CreatedAt)
		})
	}
}

func (s *service) TotalSalary(ctx context.Context) (decimal.Decimal, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.Salary)
	}
	return total, nil
}

func (s *service) ByDepartment(ctx context.Context) (map[string][]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]employee.Employee)
	for _, e := range employees {
		grouped[e.Department] = append(grouped[e.Department], e)
	}
	return grouped, nil
}

func (s *service) Export(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *service) Import(ctx context.Context, employees []employee.Employee) (int, error) {
	if err := s.employeeRepo.Replace(ctx, employees); err != nil {
		return 0, err
	}

	s.logActivity(ctx, activity.TypeDataImported, "",
		fmt.Sprintf("Employee data was imported (%d records)", len(employees)))

	return len(employees), nil
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
