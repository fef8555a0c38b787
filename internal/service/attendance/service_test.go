package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
	"github.com/stafftrack/stafftrack-go/internal/repository/kv"
)

func newTestService(t *testing.T) (*service, employee.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	employeeRepo := kv.NewEmployeeRepository(store)
	svc := NewService(
		kv.NewAttendanceRepository(store),
		employeeRepo,
		kv.NewActivityRepository(store),
	).(*service)
	return svc, employeeRepo
}

func seedEmployees(t *testing.T, repo employee.Repository, n int, status employee.Status) []employee.Employee {
	t.Helper()
	ctx := context.Background()
	out := make([]employee.Employee, 0, n)
	for i := 0; i < n; i++ {
		created, err := repo.Create(ctx, employee.Employee{
			FirstName: "Emp",
			LastName:  string(rune('A' + i)),
			Status:    status,
		})
		require.NoError(t, err)
		out = append(out, created)
	}
	return out
}

func timePtr(t time.Time) *time.Time { return &t }

func TestService_RecordComputesHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	checkIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 4, 17, 15, 0, 0, time.UTC)

	rec, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: emps[0].ID,
		Date:       "2024-03-04",
		Status:     attendance.StatusPresent,
		CheckIn:    timePtr(checkIn),
		CheckOut:   timePtr(checkOut),
	})
	require.NoError(t, err)
	assert.Equal(t, 8.25, rec.HoursWorked)
}

func TestService_RecordUnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	activityRepo := kv.NewActivityRepository(store)
	svc := NewService(
		kv.NewAttendanceRepository(store),
		kv.NewEmployeeRepository(store),
		activityRepo,
	).(*service)

	// The employee reference is not enforced: the record is stored and
	// only the activity line is skipped.
	rec, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: "emp-missing",
		Date:       "2024-03-04",
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-missing", rec.EmployeeID)

	records, err := svc.ListByDate(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	entries, err := activityRepo.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_MarkDateOrphanedEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	activityRepo := kv.NewActivityRepository(store)
	employeeRepo := kv.NewEmployeeRepository(store)
	svc := NewService(
		kv.NewAttendanceRepository(store),
		employeeRepo,
		activityRepo,
	).(*service)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	out, err := svc.MarkDate(ctx, attendance.MarkDateRequest{
		Date: "2024-03-04",
		Entries: []attendance.MarkEntry{
			{EmployeeID: emps[0].ID, Status: attendance.StatusPresent},
			{EmployeeID: "emp-gone", Status: attendance.StatusAbsent},
		},
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	records, err := svc.ListByDate(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Only the resolvable employee produced an activity line.
	entries, err := activityRepo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "Emp A")
}

func TestService_DateStatistics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 5, employee.StatusActive)

	statuses := []attendance.Status{
		attendance.StatusPresent,
		attendance.StatusPresent,
		attendance.StatusPresent,
		attendance.StatusLate,
		attendance.StatusAbsent,
	}
	for i, emp := range emps {
		_, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
			EmployeeID: emp.ID,
			Date:       "2024-03-04",
			Status:     statuses[i],
		})
		require.NoError(t, err)
	}

	stats, err := svc.DateStatistics(ctx, "2024-03-04", "")
	require.NoError(t, err)

	// 3 present + 1 late out of 5 active employees.
	assert.Equal(t, 80.0, stats.AttendanceRate)
	assert.Equal(t, 5, stats.ActiveEmployees)
	assert.Equal(t, 3, stats.Counts.Present)
	assert.Equal(t, 1, stats.Counts.Late)
	assert.Equal(t, 1, stats.Counts.Absent)
	assert.Equal(t, "2024-03-04", stats.StartDate)
	assert.Equal(t, "2024-03-04", stats.EndDate)
}

func TestService_DateStatisticsWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 2, employee.StatusActive)

	for _, date := range []string{"2024-03-04", "2024-03-05", "2024-03-08"} {
		_, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
			EmployeeID: emps[0].ID,
			Date:       date,
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	stats, err := svc.DateStatistics(ctx, "2024-03-04", "2024-03-05")
	require.NoError(t, err)

	// The record on 03-08 falls outside the window.
	assert.Equal(t, 2, stats.Counts.Present)
	assert.Equal(t, 100.0, stats.AttendanceRate)
}

func TestService_DateStatisticsNoActiveEmployees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	seedEmployees(t, employeeRepo, 2, employee.StatusInactive)

	stats, err := svc.DateStatistics(ctx, "2024-03-04", "")
	require.NoError(t, err)
	assert.Zero(t, stats.AttendanceRate)
	assert.Zero(t, stats.AverageHours)
}

func TestService_OverviewWeek(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	// Friday 2024-03-08; the trailing window covers Sat 03-02 .. Fri 03-08.
	svc.now = func() time.Time {
		return time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
	}

	_, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: emps[0].ID,
		Date:       "2024-03-06",
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	overview, err := svc.Overview(ctx, attendance.PeriodWeek)
	require.NoError(t, err)

	require.Len(t, overview.Labels, 7)
	require.Len(t, overview.Present, 7)
	assert.Equal(t, "Sat", overview.Labels[0])
	assert.Equal(t, "Fri", overview.Labels[6])

	// 03-06 is the Wednesday bucket, index 4.
	assert.Equal(t, 1, overview.Present[4])
	for i, count := range overview.Present {
		if i != 4 {
			assert.Zero(t, count)
		}
	}
}

func TestService_OverviewMonthBuckets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	// February 2024 is a leap month with 29 days.
	svc.now = func() time.Time {
		return time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	}

	_, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: emps[0].ID,
		Date:       "2024-02-10",
		Status:     attendance.StatusLate,
	})
	require.NoError(t, err)

	overview, err := svc.Overview(ctx, attendance.PeriodMonth)
	require.NoError(t, err)

	// One bucket per calendar day, labeled by day number, zero-filled.
	require.Len(t, overview.Labels, 29)
	require.Len(t, overview.Late, 29)
	assert.Equal(t, "1", overview.Labels[0])
	assert.Equal(t, "29", overview.Labels[28])
	assert.Equal(t, 1, overview.Late[9])
	for i, count := range overview.Late {
		if i != 9 {
			assert.Zero(t, count)
		}
	}
}

func TestService_OverviewYearBuckets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	svc.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	for _, date := range []string{"2024-02-01", "2024-02-15", "2024-11-03"} {
		_, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
			EmployeeID: emps[0].ID,
			Date:       date,
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	overview, err := svc.Overview(ctx, attendance.PeriodYear)
	require.NoError(t, err)

	require.Len(t, overview.Labels, 12)
	assert.Equal(t, "Jan", overview.Labels[0])
	assert.Equal(t, "Dec", overview.Labels[11])
	assert.Equal(t, 2, overview.Present[1])
	assert.Equal(t, 1, overview.Present[10])
}

func TestService_MarkDateUpsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	first, err := svc.MarkDate(ctx, attendance.MarkDateRequest{
		Date: "2024-03-04",
		Entries: []attendance.MarkEntry{
			{EmployeeID: emps[0].ID, Status: attendance.StatusAbsent},
		},
	})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.MarkDate(ctx, attendance.MarkDateRequest{
		Date: "2024-03-04",
		Entries: []attendance.MarkEntry{
			{EmployeeID: emps[0].ID, Status: attendance.StatusPresent},
		},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)

	// Marking twice updates in place rather than duplicating.
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, attendance.StatusPresent, second[0].Status)

	records, err := svc.ListByDate(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestService_EmployeeSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	records := []struct {
		date    string
		status  attendance.Status
		checkIn *time.Time
	}{
		{"2024-03-04", attendance.StatusPresent, timePtr(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))},
		{"2024-03-05", attendance.StatusLate, timePtr(time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC))},
		{"2024-03-06", attendance.StatusAbsent, nil},
		{"2024-03-07", attendance.StatusLeave, nil},
	}
	for _, rec := range records {
		_, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
			EmployeeID: emps[0].ID,
			Date:       rec.date,
			Status:     rec.status,
			CheckIn:    rec.checkIn,
		})
		require.NoError(t, err)
	}

	summary, err := svc.EmployeeSummary(ctx, emps[0].ID, "", "")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalRecords)
	assert.Equal(t, 50.0, summary.AttendanceRate)
	assert.Equal(t, "09:15", summary.AverageCheckIn)
}

func TestService_EmployeeSummaryWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	for _, date := range []string{"2024-02-28", "2024-03-04", "2024-03-05"} {
		_, err := svc.Record(ctx, attendance.RecordAttendanceRequest{
			EmployeeID: emps[0].ID,
			Date:       date,
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	summary, err := svc.EmployeeSummary(ctx, emps[0].ID, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalRecords)
}

func TestService_EmployeeSummaryNoCheckIns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emps := seedEmployees(t, employeeRepo, 1, employee.StatusActive)

	summary, err := svc.EmployeeSummary(ctx, emps[0].ID, "", "")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalRecords)
	assert.Equal(t, "N/A", summary.AverageCheckIn)
}
