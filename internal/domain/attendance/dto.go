package attendance

import (
	"time"

	"github.com/stafftrack/stafftrack-go/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	Status     Status     `json:"status"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	Status   *Status    `json:"status"`
	CheckIn  *time.Time `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkEntry is one employee's status for a bulk mark-by-date operation.
type MarkEntry struct {
	EmployeeID string     `json:"employeeId"`
	Status     Status     `json:"status"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
}

type MarkDateRequest struct {
	Date    string      `json:"date"`
	Entries []MarkEntry `json:"entries"`
}

func (r *MarkDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	for _, e := range r.Entries {
		if validator.IsEmpty(e.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "every entry requires an employeeId",
			})
			break
		}
	}
	for _, e := range r.Entries {
		if !e.Status.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "every entry status must be one of: present, absent, late, leave",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DateStatistics summarizes an inclusive date window across the active
// workforce. A single day is the window with equal bounds.
type DateStatistics struct {
	StartDate       string       `json:"startDate"`
	EndDate         string       `json:"endDate"`
	Counts          StatusCounts `json:"counts"`
	ActiveEmployees int          `json:"activeEmployees"`
	AttendanceRate  float64      `json:"attendanceRate"`
	AverageHours    float64      `json:"averageHours"`
}

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Overview is a bucketed series for charting attendance over a period.
// Labels, Present, Absent, Late and Leave are parallel slices.
type Overview struct {
	Period  Period   `json:"period"`
	Labels  []string `json:"labels"`
	Present []int    `json:"present"`
	Absent  []int    `json:"absent"`
	Late    []int    `json:"late"`
	Leave   []int    `json:"leave"`
}

// EmployeeSummary aggregates one employee's attendance history.
type EmployeeSummary struct {
	EmployeeID     string       `json:"employeeId"`
	TotalRecords   int          `json:"totalRecords"`
	Counts         StatusCounts `json:"counts"`
	AttendanceRate float64      `json:"attendanceRate"`
	TotalHours     float64      `json:"totalHours"`
	AverageCheckIn string       `json:"averageCheckIn"`
}
