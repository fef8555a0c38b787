package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/pkg/validator"
)

type Type string

const (
	TypeAttendanceSummary     Type = "attendance_summary"
	TypeSalaryReport          Type = "salary_report"
	TypePunishmentReport      Type = "punishment_report"
	TypeDepartmentPerformance Type = "department_performance"
	TypeEmployeeActivity      Type = "employee_activity"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAttendanceSummary, TypeSalaryReport, TypePunishmentReport,
		TypeDepartmentPerformance, TypeEmployeeActivity:
		return true
	}
	return false
}

// Request selects a report type and its date window.
type Request struct {
	Type      Type   `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r *Request) Validate() error {
	var errs validator.ValidationErrors

	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be a known report type",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if _, startOK := validator.IsValidDate(r.StartDate); startOK {
		if _, endOK := validator.IsValidDate(r.EndDate); endOK && r.EndDate < r.StartDate {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must not be before startDate",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Document is any generated report. Type identifies which concrete
// document the caller received.
type Document interface {
	Type() Type
}

// Period describes the requested window, with WorkDays counting the
// Monday through Friday dates inside it.
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TotalDays int    `json:"totalDays"`
	WorkDays  int    `json:"workDays"`
}

type AttendanceSummaryReport struct {
	ReportType    Type                 `json:"reportType"`
	GeneratedAt   time.Time            `json:"generatedAt"`
	Period        Period               `json:"period"`
	Overall       AttendanceOverall    `json:"overall"`
	EmployeeStats []EmployeeAttendance `json:"employeeStats"`
	DailyStats    []DailyAttendance    `json:"dailyStats"`
}

func (AttendanceSummaryReport) Type() Type { return TypeAttendanceSummary }

// AttendanceOverall relates how many records were actually attended to
// how many a full roster over the window's work days would produce.
type AttendanceOverall struct {
	TotalEmployees     int                     `json:"totalEmployees"`
	ExpectedAttendance int                     `json:"expectedAttendance"`
	ActualAttendance   int                     `json:"actualAttendance"`
	AttendanceRate     float64                 `json:"attendanceRate"`
	StatusCounts       attendance.StatusCounts `json:"statusCounts"`
}

type EmployeeAttendance struct {
	EmployeeID     string                  `json:"id"`
	Name           string                  `json:"name"`
	Department     string                  `json:"department"`
	StatusCounts   attendance.StatusCounts `json:"statusCounts"`
	AttendanceRate float64                 `json:"attendanceRate"`
	TotalHours     float64                 `json:"totalHours"`
}

type DailyAttendance struct {
	Date           string                  `json:"date"`
	StatusCounts   attendance.StatusCounts `json:"statusCounts"`
	AttendanceRate float64                 `json:"attendanceRate"`
	TotalRecords   int                     `json:"totalRecords"`
}

type SalaryReport struct {
	ReportType        Type                        `json:"reportType"`
	GeneratedAt       time.Time                   `json:"generatedAt"`
	Period            Period                      `json:"period"`
	Currency          string                      `json:"currency"`
	Overall           SalaryOverall               `json:"overall"`
	DepartmentSummary map[string]DepartmentSalary `json:"departmentSummary"`
	EmployeeSalaries  []EmployeeSalary            `json:"employeeSalaries"`
}

func (SalaryReport) Type() Type { return TypeSalaryReport }

type SalaryOverall struct {
	TotalEmployees             int             `json:"totalEmployees"`
	TotalBaseSalary            decimal.Decimal `json:"totalBaseSalary"`
	TotalDeductions            decimal.Decimal `json:"totalDeductions"`
	TotalNetSalary             decimal.Decimal `json:"totalNetSalary"`
	OverallDeductionPercentage float64         `json:"overallDeductionPercentage"`
}

type DepartmentSalary struct {
	TotalEmployees             int             `json:"totalEmployees"`
	TotalBaseSalary            decimal.Decimal `json:"totalBaseSalary"`
	TotalDeductions            decimal.Decimal `json:"totalDeductions"`
	TotalNetSalary             decimal.Decimal `json:"totalNetSalary"`
	AverageBaseSalary          decimal.Decimal `json:"averageBaseSalary"`
	AverageDeductions          decimal.Decimal `json:"averageDeductions"`
	AverageNetSalary           decimal.Decimal `json:"averageNetSalary"`
	AverageDeductionPercentage float64         `json:"averageDeductionPercentage"`
}

type EmployeeSalary struct {
	EmployeeID          string            `json:"id"`
	Name                string            `json:"name"`
	Department          string            `json:"department"`
	Position            string            `json:"position"`
	BaseSalary          decimal.Decimal   `json:"baseSalary"`
	Deductions          decimal.Decimal   `json:"deductions"`
	NetSalary           decimal.Decimal   `json:"netSalary"`
	DeductionPercentage float64           `json:"deductionPercentage"`
	PunishmentCount     int               `json:"punishmentCount"`
	PunishmentDetails   []SalaryDeduction `json:"punishmentDetails"`
}

// SalaryDeduction is one punishment charged against an employee's pay
// inside the report window.
type SalaryDeduction struct {
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type PunishmentReport struct {
	ReportType        Type                             `json:"reportType"`
	GeneratedAt       time.Time                        `json:"generatedAt"`
	Period            Period                           `json:"period"`
	Overall           PunishmentOverall                `json:"overall"`
	DepartmentSummary map[string]DepartmentPunishments `json:"departmentSummary"`
	EmployeeSummary   []EmployeePunishments            `json:"employeeSummary"`
	DetailedRecords   []PunishmentDetail               `json:"detailedRecords"`
}

func (PunishmentReport) Type() Type { return TypePunishmentReport }

// PunishmentOverall's ByType is seeded with every catalog type plus an
// "other" bucket, so zero-count types still appear.
type PunishmentOverall struct {
	TotalCount  int                   `json:"totalCount"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	ByType      map[string]TypeBucket `json:"byType"`
	ByStatus    StatusBuckets         `json:"byStatus"`
}

// TypeBucket carries the catalog display name alongside the tally.
type TypeBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
	Name   string          `json:"name"`
}

type AmountBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type StatusBuckets struct {
	Active    AmountBucket `json:"active"`
	Pending   AmountBucket `json:"pending"`
	Completed AmountBucket `json:"completed"`
}

// DepartmentPunishments and EmployeePunishments are the report's rollup
// rows; records whose employee no longer exists stay out of both.
type DepartmentPunishments struct {
	Count  int                     `json:"count"`
	Amount decimal.Decimal         `json:"amount"`
	ByType map[string]AmountBucket `json:"byType"`
}

type EmployeePunishments struct {
	EmployeeID string                  `json:"id"`
	Name       string                  `json:"name"`
	Department string                  `json:"department"`
	Count      int                     `json:"count"`
	Amount     decimal.Decimal         `json:"amount"`
	ByType     map[string]AmountBucket `json:"byType"`
}

type PunishmentDetail struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Department   string          `json:"department"`
	Type         string          `json:"type"`
	TypeName     string          `json:"typeName"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type DepartmentPerformanceReport struct {
	ReportType  Type                    `json:"reportType"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Period      Period                  `json:"period"`
	Departments []DepartmentPerformance `json:"departmentPerformance"`
}

func (DepartmentPerformanceReport) Type() Type { return TypeDepartmentPerformance }

type DepartmentPerformance struct {
	Name             string                 `json:"name"`
	EmployeeCount    int                    `json:"employeeCount"`
	Attendance       DepartmentAttendance   `json:"attendance"`
	Punishments      DepartmentDiscipline   `json:"punishments"`
	Salary           DepartmentSalaryTotals `json:"salary"`
	PerformanceScore float64                `json:"performanceScore"`
}

type DepartmentAttendance struct {
	Total int `json:"total"`
	attendance.StatusCounts
	AttendanceRate float64 `json:"attendanceRate"`
}

type DepartmentDiscipline struct {
	Total       int             `json:"total"`
	Amount      decimal.Decimal `json:"amount"`
	PerEmployee float64         `json:"perEmployee"`
	AvgAmount   decimal.Decimal `json:"avgAmount"`
}

type DepartmentSalaryTotals struct {
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
}

// EmployeeActivityReport covers the activity log inside the window,
// extended to end of day on the end date. Entries concern employee
// lifecycle, attendance and punishment events.
type EmployeeActivityReport struct {
	ReportType  Type             `json:"reportType"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Period      Period           `json:"period"`
	Overall     ActivityOverall  `json:"overall"`
	Timeline    Timeline         `json:"timeline"`
	Activities  []activity.Entry `json:"activities"`
}

func (EmployeeActivityReport) Type() Type { return TypeEmployeeActivity }

type ActivityOverall struct {
	TotalActivities int                 `json:"totalActivities"`
	ByType          []ActivityTypeGroup `json:"byType"`
}

// ActivityTypeGroup lists every entry of one activity type, in the
// order groups were first seen walking the filtered log.
type ActivityTypeGroup struct {
	Type       string           `json:"type"`
	Count      int              `json:"count"`
	Activities []activity.Entry `json:"activities"`
}

// Timeline is a pair of parallel slices: per-date event counts, dates
// ascending.
type Timeline struct {
	Dates  []string `json:"dates"`
	Counts []int    `json:"counts"`
}
