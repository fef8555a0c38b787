package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
)

type attendanceRepository struct {
	store kvstore.Store
}

func NewAttendanceRepository(store kvstore.Store) attendance.Repository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	if err := loadCollection(ctx, r.store, collectionAttendance, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	records, err := r.List(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	return r.filter(ctx, func(rec attendance.Attendance) bool {
		return rec.Date == date
	})
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return r.filter(ctx, func(rec attendance.Attendance) bool {
		return rec.EmployeeID == employeeID
	})
}

func (r *attendanceRepository) ListByRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	return r.filter(ctx, func(rec attendance.Attendance) bool {
		return rec.Date >= startDate && rec.Date <= endDate
	})
}

func (r *attendanceRepository) filter(ctx context.Context, match func(attendance.Attendance) bool) ([]attendance.Attendance, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []attendance.Attendance
	for _, rec := range records {
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	records, err := r.List(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if record.ID == "" {
		record.ID = "att-" + uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	records = append(records, record)
	if err := saveCollection(ctx, r.store, collectionAttendance, records); err != nil {
		return attendance.Attendance{}, err
	}
	return record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	records, err := r.List(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	for i := range records {
		if records[i].ID == record.ID {
			records[i] = record
			if err := saveCollection(ctx, r.store, collectionAttendance, records); err != nil {
				return attendance.Attendance{}, err
			}
			return record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return attendance.ErrAttendanceNotFound
	}
	return saveCollection(ctx, r.store, collectionAttendance, kept)
}
