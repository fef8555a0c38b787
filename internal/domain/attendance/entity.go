package attendance

import (
	"math"
	"time"
)

type Attendance struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	Status     Status     `json:"status"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	// HoursWorked is derived from the check times; zero when either side
	// is missing or check-out precedes check-in.
	HoursWorked float64   `json:"hoursWorked"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusLeave   Status = "leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusLeave:
		return true
	}
	return false
}

// StatusCounts is a fixed-field tally over the four attendance statuses.
// Add ignores unrecognized statuses rather than growing new buckets.
type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Leave   int `json:"leave"`
}

func (c *StatusCounts) Add(s Status) {
	switch s {
	case StatusPresent:
		c.Present++
	case StatusAbsent:
		c.Absent++
	case StatusLate:
		c.Late++
	case StatusLeave:
		c.Leave++
	}
}

// Attended counts the statuses treated as "showed up" in rate calculations.
func (c StatusCounts) Attended() int {
	return c.Present + c.Late
}

// HoursBetween returns the worked hours between check-in and check-out,
// rounded to 2 decimals. Zero when either side is missing or the times are
// out of order.
func HoursBetween(checkIn, checkOut *time.Time) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	if checkOut.Before(*checkIn) {
		return 0
	}
	hours := checkOut.Sub(*checkIn).Hours()
	return math.Round(hours*100) / 100
}
