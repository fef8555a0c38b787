package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	RecordAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
	MarkDate(w http.ResponseWriter, r *http.Request)
	DateStatistics(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListAttendance implements AttendanceHandler. Optional query parameters
// narrow the result to a date or an employee.
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if date := q.Get("date"); date != "" {
		results, err := h.attendanceService.ListByDate(r.Context(), date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	if employeeID := q.Get("employeeId"); employeeID != "" {
		results, err := h.attendanceService.ListByEmployee(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	results, err := h.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// GetAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecordAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// UpdateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// MarkDate implements AttendanceHandler. Each entry is recorded, or
// updated in place when the employee already has a record for the date.
func (h *attendanceHandlerImpl) MarkDate(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.attendanceService.MarkDate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", results)
}

// DateStatistics implements AttendanceHandler. Accepts a startDate and
// endDate window, a single date, or nothing (today).
func (h *attendanceHandlerImpl) DateStatistics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startDate := q.Get("startDate")
	if startDate == "" {
		startDate = q.Get("date")
	}
	if startDate == "" {
		startDate = time.Now().Format("2006-01-02")
	}

	result, err := h.attendanceService.DateStatistics(r.Context(), startDate, q.Get("endDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview implements AttendanceHandler
func (h *attendanceHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	period := attendance.Period(r.URL.Query().Get("period"))

	result, err := h.attendanceService.Overview(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeSummary implements AttendanceHandler. Optional startDate and
// endDate query parameters bound the window.
func (h *attendanceHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	q := r.URL.Query()
	result, err := h.attendanceService.EmployeeSummary(r.Context(), employeeID, q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
