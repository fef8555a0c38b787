package report

import (
	"bytes"
	"errors"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stafftrack/stafftrack-go/internal/domain/report"
)

var sheetNames = map[report.Type]string{
	report.TypeAttendanceSummary:     "Attendance Summary",
	report.TypeSalaryReport:          "Salary Report",
	report.TypePunishmentReport:      "Punishment Report",
	report.TypeDepartmentPerformance: "Department Performance",
	report.TypeEmployeeActivity:      "Employee Activity",
}

func (s *service) ExportXLSX(doc report.Document) ([]byte, error) {
	rows, err := tabularRows(doc)
	if errors.Is(err, report.ErrCSVNotSupported) {
		rows, err = activityRows(doc)
	}
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetNames[doc.Type()]
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func activityRows(doc report.Document) ([][]string, error) {
	d, ok := doc.(report.EmployeeActivityReport)
	if !ok {
		return nil, report.ErrUnknownReportType
	}

	rows := [][]string{{"Type", "Description", "Timestamp"}}
	for _, entry := range d.Activities {
		rows = append(rows, []string{
			string(entry.Type),
			entry.Description,
			entry.Timestamp.Format(time.RFC3339),
		})
	}
	return rows, nil
}
