package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
	"github.com/stafftrack/stafftrack-go/internal/repository/kv"
)

func newTestService(t *testing.T) (*service, activity.Repository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	activityRepo := kv.NewActivityRepository(store)
	svc := NewService(kv.NewEmployeeRepository(store), activityRepo).(*service)
	return svc, activityRepo
}

func strPtr(s string) *string { return &s }

func TestService_CreateDefaultsStatusAndStartDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.now = func() time.Time { return time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC) }

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "John",
		LastName:  "Doe",
		Salary:    decimal.NewFromInt(8500),
	})
	require.NoError(t, err)

	assert.Equal(t, employee.StatusActive, created.Status)
	assert.Equal(t, "2024-03-08", created.StartDate)
	assert.NotEmpty(t, created.ID)
}

func TestService_CreateLogsActivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, activityRepo := newTestService(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "John",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	entries, err := activityRepo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, activity.TypeEmployeeAdded, entries[0].Type)
	assert.Equal(t, created.ID, entries[0].EntityID)
	assert.Equal(t, "John Doe was added to the system", entries[0].Description)
}

func TestService_CreateRejectsInvalidRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, activityRepo := newTestService(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{FirstName: "John"})
	assert.Error(t, err)

	entries, err := activityRepo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_UpdateMergesOnlyProvidedFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:  "John",
		LastName:   "Doe",
		Department: "engineering",
		Salary:     decimal.NewFromInt(8500),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		Position: strPtr("Tech Lead"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Tech Lead", updated.Position)
	assert.Equal(t, "John", updated.FirstName)
	assert.Equal(t, "engineering", updated.Department)
	assert.True(t, updated.Salary.Equal(decimal.NewFromInt(8500)))
}

func TestService_UpdateUnknownID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Update(ctx, "emp-missing", employee.UpdateEmployeeRequest{
		Position: strPtr("Tech Lead"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestService_DeleteLogsEmployeeName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, activityRepo := newTestService(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "Jane",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	entries, err := activityRepo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, activity.TypeEmployeeDeleted, entries[0].Type)
	assert.Equal(t, "Jane Smith was removed from the system", entries[0].Description)
}

func TestService_Search(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	seed := []employee.CreateEmployeeRequest{
		{FirstName: "John", LastName: "Doe", Department: "engineering", Position: "Senior Developer", Salary: decimal.NewFromInt(8500)},
		{FirstName: "Jane", LastName: "Smith", Department: "marketing", Position: "Manager", Salary: decimal.NewFromInt(7200), Status: employee.StatusOnLeave},
		{FirstName: "Bob", LastName: "Johnson", Department: "engineering", Position: "Developer", Salary: decimal.NewFromInt(6000)},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		out, err := svc.Search(ctx, employee.SearchFilter{Query: "john"})
		require.NoError(t, err)
		// Matches John Doe and Bob Johnson.
		require.Len(t, out, 2)
	})

	t.Run("query matches position", func(t *testing.T) {
		out, err := svc.Search(ctx, employee.SearchFilter{Query: "developer"})
		require.NoError(t, err)
		require.Len(t, out, 2)
	})

	t.Run("department filter", func(t *testing.T) {
		out, err := svc.Search(ctx, employee.SearchFilter{Department: "marketing"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Jane", out[0].FirstName)
	})

	t.Run("all passes every department", func(t *testing.T) {
		out, err := svc.Search(ctx, employee.SearchFilter{Department: "all"})
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		out, err := svc.Search(ctx, employee.SearchFilter{Status: "onLeave"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Jane", out[0].FirstName)
	})

	t.Run("sort by salary descending", func(t *testing.T) {
		out, err := svc.Search(ctx, employee.SearchFilter{SortBy: "salaryHigh"})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "John", out[0].FirstName)
		assert.Equal(t, "Bob", out[2].FirstName)
	})

	t.Run("sort by name ascending", func(t *testing.T) {
		out, err := svc.Search(ctx, employee.SearchFilter{SortBy: "nameAsc"})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "Bob", out[0].FirstName)
		assert.Equal(t, "John", out[2].FirstName)
	})

	t.Run("invalid sort mode rejected", func(t *testing.T) {
		_, err := svc.Search(ctx, employee.SearchFilter{SortBy: "oldest"})
		assert.Error(t, err)
	})
}

func TestService_TotalSalary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, salary := range []int64{8500, 7200} {
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FirstName: "A",
			LastName:  "B",
			Salary:    decimal.NewFromInt(salary),
		})
		require.NoError(t, err)
	}

	total, err := svc.TotalSalary(ctx)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(15700)))
}

func TestService_ImportReplacesAndLogs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, activityRepo := newTestService(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{FirstName: "Old", LastName: "Guard"})
	require.NoError(t, err)

	count, err := svc.Import(ctx, []employee.Employee{
		{ID: "emp-101", FirstName: "New", LastName: "One", Status: employee.StatusActive},
		{ID: "emp-102", FirstName: "New", LastName: "Two", Status: employee.StatusActive},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "emp-101", out[0].ID)

	entries, err := activityRepo.List(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, activity.TypeDataImported, entries[0].Type)
	assert.Equal(t, "Employee data was imported (2 records)", entries[0].Description)
}
