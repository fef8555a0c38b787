package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/domain/auth"
	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
	"github.com/stafftrack/stafftrack-go/internal/repository/kv"
)

// Seed initializes a fresh store with default settings and the login
// accounts, plus demo data when includeSamples is set. A store that
// already holds a settings collection is left untouched.
func Seed(ctx context.Context, store kvstore.Store, includeSamples bool) error {
	if _, err := store.Read(ctx, "settings"); err == nil {
		return nil
	} else if !errors.Is(err, kvstore.ErrCollectionNotFound) {
		return fmt.Errorf("check settings collection: %w", err)
	}

	settingsRepo := kv.NewSettingsRepository(store, DefaultSettings())
	if _, err := settingsRepo.Update(ctx, DefaultSettings()); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	if err := seedUsers(ctx, store); err != nil {
		return err
	}

	if !includeSamples {
		return nil
	}
	return seedSamples(ctx, store)
}

func seedUsers(ctx context.Context, store kvstore.Store) error {
	userRepo := kv.NewUserRepository(store)

	accounts := []struct {
		username string
		password string
		name     string
		role     auth.Role
	}{
		{"admin", "admin123", "Admin User", auth.RoleAdmin},
		{"manager", "manager456", "Manager User", auth.RoleManager},
	}

	for _, acc := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", acc.username, err)
		}
		_, err = userRepo.Create(ctx, auth.User{
			Username:     acc.username,
			PasswordHash: string(hash),
			Name:         acc.name,
			Role:         acc.role,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", acc.username, err)
		}
	}
	return nil
}

func seedSamples(ctx context.Context, store kvstore.Store) error {
	employeeRepo := kv.NewEmployeeRepository(store)
	if err := employeeRepo.Replace(ctx, SampleEmployees()); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	attendanceRepo := kv.NewAttendanceRepository(store)
	now := time.Now()
	for dayOffset := 5; dayOffset >= 1; dayOffset-- {
		day := now.AddDate(0, 0, -dayOffset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		date := day.Format("2006-01-02")

		for i, emp := range SampleEmployees() {
			status := attendance.StatusPresent
			// A predictable sprinkling of exceptions.
			switch {
			case emp.ID == "emp-004":
				status = attendance.StatusLeave
			case i == dayOffset%5:
				status = attendance.StatusLate
			}

			record := attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       date,
				Status:     status,
			}
			if status == attendance.StatusPresent || status == attendance.StatusLate {
				checkIn := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())
				if status == attendance.StatusLate {
					checkIn = checkIn.Add(25 * time.Minute)
				}
				checkOut := time.Date(day.Year(), day.Month(), day.Day(), 17, 30, 0, 0, day.Location())
				record.CheckIn = &checkIn
				record.CheckOut = &checkOut
				record.HoursWorked = attendance.HoursBetween(&checkIn, &checkOut)
			}

			if _, err := attendanceRepo.Create(ctx, record); err != nil {
				return fmt.Errorf("seed attendance: %w", err)
			}
		}
	}

	punishmentRepo := kv.NewPunishmentRepository(store)
	completedAt := now.AddDate(0, 0, -7)
	samples := []punishment.Punishment{
		{
			EmployeeID:  "emp-003",
			Type:        "late",
			Amount:      decimal.NewFromInt(50),
			Date:        now.AddDate(0, 0, -3).Format("2006-01-02"),
			Status:      punishment.StatusActive,
			Description: "Arrived 25 minutes late without notice",
		},
		{
			EmployeeID:  "emp-005",
			Type:        "performance",
			Amount:      decimal.NewFromInt(100),
			Date:        now.AddDate(0, 0, -10).Format("2006-01-02"),
			Status:      punishment.StatusCompleted,
			Description: "Missed the quarterly closing deadline",
			CompletedAt: &completedAt,
		},
	}
	for _, p := range samples {
		if _, err := punishmentRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed punishments: %w", err)
		}
	}

	return nil
}
