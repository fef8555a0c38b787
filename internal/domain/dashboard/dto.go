package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
)

// Overview is the landing page payload: headline numbers, today's
// attendance and the latest activity entries.
type Overview struct {
	TotalEmployees    int                       `json:"totalEmployees"`
	ActiveEmployees   int                       `json:"activeEmployees"`
	TotalSalary       decimal.Decimal           `json:"totalSalary"`
	ActivePunishments int                       `json:"activePunishments"`
	PendingDeductions decimal.Decimal           `json:"pendingDeductions"`
	Today             attendance.DateStatistics `json:"today"`
	ByDepartment      map[string]int            `json:"byDepartment"`
	RecentActivity    []activity.Entry          `json:"recentActivity"`
}
