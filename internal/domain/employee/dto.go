package employee

import (
	"github.com/shopspring/decimal"
	"github.com/stafftrack/stafftrack-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
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
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhone(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if !validator.IsEmpty(r.StartDate) {
		if _, valid := validator.IsValidDate(r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if r.Status != "" && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, onLeave, suspended, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a shallow partial update; nil fields keep
// their stored value.
type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"firstName,omitempty"`
	LastName   *string          `json:"lastName,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Department *string          `json:"department,omitempty"`
	Position   *string          `json:"position,omitempty"`
	StartDate  *string          `json:"startDate,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	Address    *string          `json:"address,omitempty"`
	Status     *Status          `json:"status,omitempty"`
	ImageURL   *string          `json:"imageUrl,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName must not be empty",
		})
	}

	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName must not be empty",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhone(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if r.StartDate != nil && !validator.IsEmpty(*r.StartDate) {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, onLeave, suspended, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SearchFilter struct {
	// Query matches case-insensitively against first name, last name,
	// email and position.
	Query      string `json:"query,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
	SortBy     string `json:"sortBy,omitempty"` // nameAsc, nameDesc, salaryHigh, salaryLow, recent
}

func (f *SearchFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && f.Status != "all" && !Status(f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, onLeave, suspended, inactive, all",
		})
	}

	if f.SortBy != "" {
		validSortModes := []string{"nameAsc", "nameDesc", "salaryHigh", "salaryLow", "recent"}
		if !validator.IsInSlice(f.SortBy, validSortModes) {
			errs = append(errs, validator.ValidationError{
				Field:   "sortBy",
				Message: "sortBy must be one of: nameAsc, nameDesc, salaryHigh, salaryLow, recent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
