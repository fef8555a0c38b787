package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
)

type service struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	activityRepo   activity.Repository
	now            func() time.Time
}

func NewService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	activityRepo activity.Repository,
) attendance.Service {
	return &service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		activityRepo:   activityRepo,
		now:            time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]attendance.Attendance, error) {
	return s.attendanceRepo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (attendance.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

func (s *service) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	return s.attendanceRepo.ListByDate(ctx, date)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return s.attendanceRepo.ListByEmployee(ctx, employeeID)
}

func (s *service) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	record := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		Status:      req.Status,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		HoursWorked: attendance.HoursBetween(req.CheckIn, req.CheckOut),
		CreatedAt:   s.now(),
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, err
	}

	s.logStatus(ctx, activity.TypeAttendanceRecorded, created)

	return created, nil
}

func (s *service) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.CheckIn != nil {
		record.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		record.CheckOut = req.CheckOut
	}
	record.HoursWorked = attendance.HoursBetween(record.CheckIn, record.CheckOut)

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.Attendance{}, err
	}

	s.logActivity(ctx, activity.TypeAttendanceUpdated, updated.ID,
		fmt.Sprintf("Attendance record for %s was updated", updated.Date))

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, activity.TypeAttendanceDeleted, id,
		fmt.Sprintf("Attendance record for %s was deleted", record.Date))

	return nil
}

func (s *service) MarkDate(ctx context.Context, req attendance.MarkDateRequest) ([]attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.attendanceRepo.ListByDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[string]attendance.Attendance, len(existing))
	for _, rec := range existing {
		byEmployee[rec.EmployeeID] = rec
	}

	out := make([]attendance.Attendance, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if rec, ok := byEmployee[entry.EmployeeID]; ok {
			rec.Status = entry.Status
			rec.CheckIn = entry.CheckIn
			rec.CheckOut = entry.CheckOut
			rec.HoursWorked = attendance.HoursBetween(entry.CheckIn, entry.CheckOut)

			updated, err := s.attendanceRepo.Update(ctx, rec)
			if err != nil {
				return nil, err
			}
			byEmployee[entry.EmployeeID] = updated
			out = append(out, updated)

			s.logStatus(ctx, activity.TypeAttendanceUpdated, updated)
			continue
		}

		created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID:  entry.EmployeeID,
			Date:        req.Date,
			Status:      entry.Status,
			CheckIn:     entry.CheckIn,
			CheckOut:    entry.CheckOut,
			HoursWorked: attendance.HoursBetween(entry.CheckIn, entry.CheckOut),
			CreatedAt:   s.now(),
		})
		if err != nil {
			return nil, err
		}
		byEmployee[entry.EmployeeID] = created
		out = append(out, created)

		s.logStatus(ctx, activity.TypeAttendanceRecorded, created)
	}

	return out, nil
}

func (s *service) DateStatistics(ctx context.Context, startDate, endDate string) (attendance.DateStatistics, error) {
	if endDate == "" {
		endDate = startDate
	}

	records, err := s.attendanceRepo.ListByRange(ctx, startDate, endDate)
	if err != nil {
		return attendance.DateStatistics{}, err
	}

	active, err := s.employeeRepo.Find(ctx, func(e employee.Employee) bool {
		return e.Status == employee.StatusActive
	})
	if err != nil {
		return attendance.DateStatistics{}, err
	}

	return dateStatistics(startDate, endDate, records, len(active)), nil
}

func (s *service) Overview(ctx context.Context, period attendance.Period) (attendance.Overview, error) {
	if !period.Valid() {
		period = attendance.PeriodWeek
	}

	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.Overview{}, err
	}

	return buildOverview(period, records, s.now()), nil
}

func (s *service) EmployeeSummary(ctx context.Context, employeeID, startDate, endDate string) (attendance.EmployeeSummary, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.EmployeeSummary{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeSummary{}, err
	}

	if startDate != "" || endDate != "" {
		filtered := records[:0]
		for _, rec := range records {
			if startDate != "" && rec.Date < startDate {
				continue
			}
			if endDate != "" && rec.Date > endDate {
				continue
			}
			filtered = append(filtered, rec)
		}
		records = filtered
	}

	return employeeSummary(employeeID, records), nil
}

func statusDescription(name string, status attendance.Status) string {
	switch status {
	case attendance.StatusPresent:
		return name + " checked in"
	case attendance.StatusAbsent:
		return name + " marked as absent"
	case attendance.StatusLate:
		return name + " arrived late"
	case attendance.StatusLeave:
		return name + " on leave"
	}
	return name + " attendance recorded"
}

// The employee reference on attendance writes is not enforced: a record
// whose employee does not resolve is still stored, and only its activity
// line is skipped.
func (s *service) logStatus(ctx context.Context, typ activity.Type, rec attendance.Attendance) {
	emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return
	}
	s.logActivity(ctx, typ, rec.ID, statusDescription(emp.FullName(), rec.Status))
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
