package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/domain/auth"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/domain/report"
	"github.com/stafftrack/stafftrack-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Punishment domain errors
	case errors.Is(err, punishment.ErrPunishmentNotFound):
		NotFound(w, "Punishment not found")

	// Report domain errors
	case errors.Is(err, report.ErrUnknownReportType):
		BadRequest(w, "Unknown report type", nil)
	case errors.Is(err, report.ErrCSVNotSupported):
		BadRequest(w, "Report type cannot be exported as CSV", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
