package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/domain/report"
)

func TestService_ExportCSV_SalaryReport(t *testing.T) {
	t.Parallel()

	doc := report.SalaryReport{
		EmployeeSalaries: []report.EmployeeSalary{
			{
				Name:                "John Doe",
				Department:          "engineering",
				Position:            "Senior, Developer",
				BaseSalary:          decimal.NewFromInt(1000),
				Deductions:          decimal.NewFromInt(100),
				NetSalary:           decimal.NewFromInt(900),
				DeductionPercentage: 10,
			},
		},
	}

	data, err := (&service{}).ExportCSV(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Employee,Department,Position,Base Salary,Deductions,Net Salary,Deduction %", lines[0])
	// The comma in the position forces quoting.
	assert.Equal(t, `John Doe,engineering,"Senior, Developer",1000,100,900,10`, lines[1])
}

func TestService_ExportCSV_AttendanceSummary(t *testing.T) {
	t.Parallel()

	doc := report.AttendanceSummaryReport{
		EmployeeStats: []report.EmployeeAttendance{
			{
				Name:           "Jane Smith",
				Department:     "marketing",
				StatusCounts:   attendance.StatusCounts{Present: 3, Late: 1},
				AttendanceRate: 80,
				TotalHours:     32.5,
			},
		},
	}

	data, err := (&service{}).ExportCSV(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Employee,Department,Present,Absent,Late,Leave,Attendance Rate,Total Hours", lines[0])
	assert.Equal(t, "Jane Smith,marketing,3,0,1,0,80,32.5", lines[1])
}

func TestService_ExportCSV_PunishmentReport(t *testing.T) {
	t.Parallel()

	doc := report.PunishmentReport{
		DetailedRecords: []report.PunishmentDetail{
			{
				Date:         "2024-03-04",
				EmployeeName: "John Doe",
				Department:   "engineering",
				Type:         "late",
				TypeName:     "Late Arrival",
				Amount:       decimal.NewFromInt(50),
				Status:       "active",
				Description:  "Arrived 30 minutes late",
			},
		},
	}

	data, err := (&service{}).ExportCSV(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Employee,Department,Type,Amount,Status,Description", lines[0])
	// The type column carries the catalog display name, not the id.
	assert.Equal(t, "2024-03-04,John Doe,engineering,Late Arrival,50,active,Arrived 30 minutes late", lines[1])
}

func TestService_ExportCSV_EmployeeActivityNotSupported(t *testing.T) {
	t.Parallel()

	_, err := (&service{}).ExportCSV(report.EmployeeActivityReport{})
	assert.ErrorIs(t, err, report.ErrCSVNotSupported)
}

func TestService_ExportJSON(t *testing.T) {
	t.Parallel()

	doc := report.DepartmentPerformanceReport{
		Period: report.Period{StartDate: "2024-03-04", EndDate: "2024-03-10", TotalDays: 7, WorkDays: 5},
		Departments: []report.DepartmentPerformance{
			{
				Name:          "engineering",
				EmployeeCount: 2,
				Attendance: report.DepartmentAttendance{
					Total:          4,
					StatusCounts:   attendance.StatusCounts{Present: 2, Absent: 1, Late: 1},
					AttendanceRate: 75,
				},
				Punishments: report.DepartmentDiscipline{
					Total:       1,
					Amount:      decimal.NewFromInt(50),
					PerEmployee: 0.5,
					AvgAmount:   decimal.NewFromInt(50),
				},
				Salary: report.DepartmentSalaryTotals{
					Total:   decimal.NewFromInt(3000),
					Average: decimal.NewFromInt(1500),
				},
				PerformanceScore: 81,
			},
		},
	}

	data, err := (&service{}).ExportJSON(doc)
	require.NoError(t, err)

	var decoded report.DepartmentPerformanceReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc.Period, decoded.Period)
	require.Len(t, decoded.Departments, 1)
	assert.Equal(t, "engineering", decoded.Departments[0].Name)
	assert.Equal(t, 2, decoded.Departments[0].Attendance.Present)
	assert.True(t, decoded.Departments[0].Punishments.Amount.Equal(decimal.NewFromInt(50)))
}

func TestService_ExportXLSX_EmployeeActivity(t *testing.T) {
	t.Parallel()

	doc := report.EmployeeActivityReport{
		Activities: []activity.Entry{
			{
				Type:        activity.TypePunishmentCreated,
				Description: "John Doe received a Late Arrival punishment",
				Timestamp:   time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
			},
		},
	}

	data, err := (&service{}).ExportXLSX(doc)
	require.NoError(t, err)
	// XLSX files are zip archives.
	assert.Equal(t, "PK", string(data[:2]))
}
