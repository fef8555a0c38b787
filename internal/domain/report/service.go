package report

import "context"

type Service interface {
	// Generate dispatches on req.Type. The returned Document is one of
	// the concrete report structs in this package.
	Generate(ctx context.Context, req Request) (Document, error)

	AttendanceSummary(ctx context.Context, req Request) (AttendanceSummaryReport, error)
	Salary(ctx context.Context, req Request) (SalaryReport, error)
	Punishments(ctx context.Context, req Request) (PunishmentReport, error)
	DepartmentPerformance(ctx context.Context, req Request) (DepartmentPerformanceReport, error)
	EmployeeActivity(ctx context.Context, req Request) (EmployeeActivityReport, error)

	ExportJSON(doc Document) ([]byte, error)
	ExportCSV(doc Document) ([]byte, error)
	ExportXLSX(doc Document) ([]byte, error)
}
