package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/report"
)

func (s *service) ExportJSON(doc report.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func (s *service) ExportCSV(doc report.Document) ([]byte, error) {
	rows, err := tabularRows(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tabularRows flattens a report into a header row plus data rows. The
// employee activity report has no flat form and yields ErrCSVNotSupported.
func tabularRows(doc report.Document) ([][]string, error) {
	switch d := doc.(type) {
	case report.AttendanceSummaryReport:
		rows := [][]string{{"Employee", "Department", "Present", "Absent", "Late", "Leave", "Attendance Rate", "Total Hours"}}
		for _, stat := range d.EmployeeStats {
			rows = append(rows, []string{
				stat.Name,
				stat.Department,
				strconv.Itoa(stat.StatusCounts.Present),
				strconv.Itoa(stat.StatusCounts.Absent),
				strconv.Itoa(stat.StatusCounts.Late),
				strconv.Itoa(stat.StatusCounts.Leave),
				formatFloat(stat.AttendanceRate),
				formatFloat(stat.TotalHours),
			})
		}
		return rows, nil

	case report.SalaryReport:
		rows := [][]string{{"Employee", "Department", "Position", "Base Salary", "Deductions", "Net Salary", "Deduction %"}}
		for _, row := range d.EmployeeSalaries {
			rows = append(rows, []string{
				row.Name,
				row.Department,
				row.Position,
				formatAmount(row.BaseSalary),
				formatAmount(row.Deductions),
				formatAmount(row.NetSalary),
				formatFloat(row.DeductionPercentage),
			})
		}
		return rows, nil

	case report.PunishmentReport:
		rows := [][]string{{"Date", "Employee", "Department", "Type", "Amount", "Status", "Description"}}
		for _, rec := range d.DetailedRecords {
			rows = append(rows, []string{
				rec.Date,
				rec.EmployeeName,
				rec.Department,
				rec.TypeName,
				formatAmount(rec.Amount),
				rec.Status,
				rec.Description,
			})
		}
		return rows, nil

	case report.DepartmentPerformanceReport:
		rows := [][]string{{"Department", "Employees", "Attendance Rate", "Punishments", "Punishment Amount", "Performance Score"}}
		for _, dept := range d.Departments {
			rows = append(rows, []string{
				dept.Name,
				strconv.Itoa(dept.EmployeeCount),
				formatFloat(dept.Attendance.AttendanceRate),
				strconv.Itoa(dept.Punishments.Total),
				formatAmount(dept.Punishments.Amount),
				formatFloat(dept.PerformanceScore),
			})
		}
		return rows, nil

	case report.EmployeeActivityReport:
		return nil, report.ErrCSVNotSupported
	}

	return nil, report.ErrUnknownReportType
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAmount(v decimal.Decimal) string {
	return v.String()
}
