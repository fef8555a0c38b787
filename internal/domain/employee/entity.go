package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	StartDate  string          `json:"startDate"`
	Salary     decimal.Decimal `json:"salary"`
	Address    string          `json:"address"`
	Status     Status          `json:"status"`
	ImageURL   string          `json:"imageUrl"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// FullName returns the display name used in activity log entries and reports.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Status string

const (
	StatusActive    Status = "active"
	StatusOnLeave   Status = "onLeave"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusSuspended, StatusInactive:
		return true
	}
	return false
}
