package dashboard

import (
	"context"
	"time"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/domain/dashboard"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
)

const recentActivityLimit = 10

type service struct {
	employeeService   employee.Service
	attendanceService attendance.Service
	punishmentService punishment.Service
	activityRepo      activity.Repository
	now               func() time.Time
}

func NewService(
	employeeService employee.Service,
	attendanceService attendance.Service,
	punishmentService punishment.Service,
	activityRepo activity.Repository,
) dashboard.Service {
	return &service{
		employeeService:   employeeService,
		attendanceService: attendanceService,
		punishmentService: punishmentService,
		activityRepo:      activityRepo,
		now:               time.Now,
	}
}

func (s *service) Overview(ctx context.Context) (dashboard.Overview, error) {
	employees, err := s.employeeService.List(ctx)
	if err != nil {
		return dashboard.Overview{}, err
	}

	overview := dashboard.Overview{
		TotalEmployees: len(employees),
		ByDepartment:   make(map[string]int),
	}
	for _, e := range employees {
		if e.Status == employee.StatusActive {
			overview.ActiveEmployees++
		}
		overview.ByDepartment[e.Department]++
	}

	overview.TotalSalary, err = s.employeeService.TotalSalary(ctx)
	if err != nil {
		return dashboard.Overview{}, err
	}

	stats, err := s.punishmentService.Statistics(ctx)
	if err != nil {
		return dashboard.Overview{}, err
	}
	overview.ActivePunishments = stats.ByStatus.Active
	overview.PendingDeductions = stats.ActiveAmount

	today := s.now().Format("2006-01-02")
	overview.Today, err = s.attendanceService.DateStatistics(ctx, today, today)
	if err != nil {
		return dashboard.Overview{}, err
	}

	overview.RecentActivity, err = s.activityRepo.List(ctx, recentActivityLimit)
	if err != nil {
		return dashboard.Overview{}, err
	}

	return overview, nil
}
