package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/handler/http/response"
)

type PunishmentHandler interface {
	ListPunishments(w http.ResponseWriter, r *http.Request)
	GetPunishment(w http.ResponseWriter, r *http.Request)
	CreatePunishment(w http.ResponseWriter, r *http.Request)
	UpdatePunishment(w http.ResponseWriter, r *http.Request)
	DeletePunishment(w http.ResponseWriter, r *http.Request)
	CompletePunishment(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
	ChartData(w http.ResponseWriter, r *http.Request)
}

type punishmentHandlerImpl struct {
	punishmentService punishment.Service
}

func NewPunishmentHandler(punishmentService punishment.Service) PunishmentHandler {
	return &punishmentHandlerImpl{punishmentService: punishmentService}
}

// ListPunishments implements PunishmentHandler. An employeeId query
// parameter narrows the result to one employee.
func (h *punishmentHandlerImpl) ListPunishments(w http.ResponseWriter, r *http.Request) {
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		results, err := h.punishmentService.ListByEmployee(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	results, err := h.punishmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// GetPunishment implements PunishmentHandler
func (h *punishmentHandlerImpl) GetPunishment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Punishment ID is required", nil)
		return
	}

	result, err := h.punishmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreatePunishment implements PunishmentHandler
func (h *punishmentHandlerImpl) CreatePunishment(w http.ResponseWriter, r *http.Request) {
	var req punishment.CreatePunishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punishmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punishment created", result)
}

// UpdatePunishment implements PunishmentHandler
func (h *punishmentHandlerImpl) UpdatePunishment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Punishment ID is required", nil)
		return
	}

	var req punishment.UpdatePunishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punishmentService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punishment updated", result)
}

// DeletePunishment implements PunishmentHandler
func (h *punishmentHandlerImpl) DeletePunishment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Punishment ID is required", nil)
		return
	}

	if err := h.punishmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punishment deleted", nil)
}

// CompletePunishment implements PunishmentHandler
func (h *punishmentHandlerImpl) CompletePunishment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Punishment ID is required", nil)
		return
	}

	result, err := h.punishmentService.Complete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punishment completed", result)
}

// Statistics implements PunishmentHandler
func (h *punishmentHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.punishmentService.Statistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ChartData implements PunishmentHandler
func (h *punishmentHandlerImpl) ChartData(w http.ResponseWriter, r *http.Request) {
	result, err := h.punishmentService.ChartData(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
