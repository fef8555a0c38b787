package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/fixtures"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
	"github.com/stafftrack/stafftrack-go/internal/repository/kv"
	attendancesvc "github.com/stafftrack/stafftrack-go/internal/service/attendance"
	employeesvc "github.com/stafftrack/stafftrack-go/internal/service/employee"
	punishmentsvc "github.com/stafftrack/stafftrack-go/internal/service/punishment"
)

func TestService_Overview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := kvstore.NewMemoryStore()
	employeeRepo := kv.NewEmployeeRepository(store)
	attendanceRepo := kv.NewAttendanceRepository(store)
	punishmentRepo := kv.NewPunishmentRepository(store)
	settingsRepo := kv.NewSettingsRepository(store, fixtures.DefaultSettings())
	activityRepo := kv.NewActivityRepository(store)

	employeeService := employeesvc.NewService(employeeRepo, activityRepo)
	attendanceService := attendancesvc.NewService(attendanceRepo, employeeRepo, activityRepo)
	punishmentService := punishmentsvc.NewService(punishmentRepo, employeeRepo, settingsRepo, activityRepo)

	_, err := employeeService.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:  "John",
		LastName:   "Doe",
		Department: "engineering",
		Salary:     decimal.NewFromInt(8500),
	})
	require.NoError(t, err)
	created, err := employeeService.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:  "Jane",
		LastName:   "Smith",
		Department: "marketing",
		Salary:     decimal.NewFromInt(7200),
		Status:     employee.StatusOnLeave,
	})
	require.NoError(t, err)

	_, err = punishmentService.Create(ctx, punishment.CreatePunishmentRequest{
		EmployeeID: created.ID,
		Type:       "late",
		Amount:     decimal.NewFromInt(50),
		Date:       "2024-03-05",
	})
	require.NoError(t, err)

	svc := NewService(employeeService, attendanceService, punishmentService, activityRepo).(*service)
	svc.now = func() time.Time { return time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC) }

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.TotalEmployees)
	assert.Equal(t, 1, overview.ActiveEmployees)
	assert.True(t, overview.TotalSalary.Equal(decimal.NewFromInt(15700)))
	assert.Equal(t, 1, overview.ActivePunishments)
	assert.True(t, overview.PendingDeductions.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, map[string]int{"engineering": 1, "marketing": 1}, overview.ByDepartment)
	assert.Equal(t, "2024-03-08", overview.Today.StartDate)
	assert.Zero(t, overview.Today.Counts)
	// Two employee creations plus one punishment.
	assert.Len(t, overview.RecentActivity, 3)
}
