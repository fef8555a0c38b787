package punishment

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
)

func newTestService(t *testing.T) (*service, employee.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	employeeRepo := kv.NewEmployeeRepository(store)
	svc := NewService(
		kv.NewPunishmentRepository(store),
		employeeRepo,
		kv.NewSettingsRepository(store, fixtures.DefaultSettings()),
		kv.NewActivityRepository(store),
	).(*service)
	return svc, employeeRepo
}

func seedEmployee(t *testing.T, repo employee.Repository) employee.Employee {
	t.Helper()
	created, err := repo.Create(context.Background(), employee.Employee{
		FirstName: "John",
		LastName:  "Doe",
		Status:    employee.StatusActive,
	})
	require.NoError(t, err)
	return created
}

func TestService_CreateDefaultsToActive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emp := seedEmployee(t, employeeRepo)

	created, err := svc.Create(ctx, punishment.CreatePunishmentRequest{
		EmployeeID: emp.ID,
		Type:       "late",
		Amount:     decimal.NewFromInt(50),
		Date:       "2024-03-04",
	})
	require.NoError(t, err)
	assert.Equal(t, punishment.StatusActive, created.Status)
	assert.Nil(t, created.CompletedAt)
}

func TestService_CompleteStampsCompletedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emp := seedEmployee(t, employeeRepo)

	completedAt := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return completedAt }

	created, err := svc.Create(ctx, punishment.CreatePunishmentRequest{
		EmployeeID: emp.ID,
		Type:       "conduct",
		Amount:     decimal.NewFromInt(150),
		Date:       "2024-03-04",
	})
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, punishment.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.CompletedAt.Equal(completedAt))
}

func TestService_Statistics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emp := seedEmployee(t, employeeRepo)

	seed := []struct {
		typ    string
		amount int64
		status punishment.Status
	}{
		{"late", 50, punishment.StatusActive},
		{"late", 50, punishment.StatusCompleted},
		{"absence", 200, punishment.StatusActive},
		{"performance", 100, punishment.StatusPending},
	}
	for _, p := range seed {
		_, err := svc.Create(ctx, punishment.CreatePunishmentRequest{
			EmployeeID: emp.ID,
			Type:       p.typ,
			Amount:     decimal.NewFromInt(p.amount),
			Date:       "2024-03-04",
			Status:     p.status,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByType["late"])
	assert.Equal(t, 1, stats.ByType["absence"])
	assert.Equal(t, 2, stats.ByStatus.Active)
	assert.Equal(t, 1, stats.ByStatus.Pending)
	assert.Equal(t, 1, stats.ByStatus.Completed)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, stats.ActiveAmount.Equal(decimal.NewFromInt(250)))
}

func TestService_ChartDataSkipsEmptyTypes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emp := seedEmployee(t, employeeRepo)

	_, err := svc.Create(ctx, punishment.CreatePunishmentRequest{
		EmployeeID: emp.ID,
		Type:       "late",
		Amount:     decimal.NewFromInt(50),
		Date:       "2024-03-04",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, punishment.CreatePunishmentRequest{
		EmployeeID: emp.ID,
		Type:       "dress_code",
		Amount:     decimal.NewFromInt(25),
		Date:       "2024-03-05",
	})
	require.NoError(t, err)

	data, err := svc.ChartData(ctx)
	require.NoError(t, err)

	// Catalog types with records come first, then uncataloged ones.
	assert.Equal(t, []string{"Late Arrival", "dress_code"}, data.ByCount.Labels)
	assert.Equal(t, []int{1, 1}, data.ByCount.Data)
	assert.Equal(t, []string{"#FF9F0A", "#64D2FF"}, data.ByCount.Colors)
	assert.Equal(t, []float64{50, 25}, data.ByAmount.Data)
}

func TestService_EmployeeDeductionsCountsActiveOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTestService(t)
	emp := seedEmployee(t, employeeRepo)

	seed := []struct {
		amount int64
		status punishment.Status
	}{
		{50, punishment.StatusActive},
		{200, punishment.StatusActive},
		{100, punishment.StatusCompleted},
		{75, punishment.StatusPending},
	}
	for _, p := range seed {
		_, err := svc.Create(ctx, punishment.CreatePunishmentRequest{
			EmployeeID: emp.ID,
			Type:       "late",
			Amount:     decimal.NewFromInt(p.amount),
			Date:       "2024-03-04",
			Status:     p.status,
		})
		require.NoError(t, err)
	}

	total, err := svc.EmployeeDeductions(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(250)))
}
