package punishment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Punishment struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Status      Status          `json:"status"`
	Description string          `json:"description"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted:
		return true
	}
	return false
}
