package punishment

import (
	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/pkg/validator"
)

type CreatePunishmentRequest struct {
	EmployeeID  string          `json:"employeeId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Status      Status          `json:"status"`
	Description string          `json:"description"`
}

func (r *CreatePunishmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != "" && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, pending, completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePunishmentRequest struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	Status      *Status          `json:"status"`
	Description *string          `json:"description"`
}

func (r *UpdatePunishmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && validator.IsEmpty(*r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must not be empty",
		})
	}

	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, pending, completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusAmounts tallies records and money per punishment status.
type StatusAmounts struct {
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// Statistics summarizes the full punishment ledger.
type Statistics struct {
	Total        int             `json:"total"`
	ByType       map[string]int  `json:"byType"`
	ByStatus     StatusAmounts   `json:"byStatus"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ActiveAmount decimal.Decimal `json:"activeAmount"`
}

// ChartData carries two parallel pie series over punishment types, one by
// record count and one by summed amount. Types with no records are skipped.
type ChartData struct {
	ByCount  CountSeries  `json:"byCount"`
	ByAmount AmountSeries `json:"byAmount"`
}

type CountSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
	Colors []string `json:"colors"`
}

type AmountSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}
