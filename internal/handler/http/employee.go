package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/insight"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Load(w http.ResponseWriter, r *http.Request)
	LoadMore(w http.ResponseWriter, r *http.Request)
	ShowMore(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Filtered(w http.ResponseWriter, r *http.Request)
	State(w http.ResponseWriter, r *http.Request)
	UpdateQuery(w http.ResponseWriter, r *http.Request)
	ClearQuery(w http.ResponseWriter, r *http.Request)
	SetPage(w http.ResponseWriter, r *http.Request)
	ResetPagination(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	rosterService  employee.RosterService
	insightService insight.InsightService
}

func NewEmployeeHandler(rosterService employee.RosterService, insightService insight.InsightService) EmployeeHandler {
	return &employeeHandlerImpl{
		rosterService:  rosterService,
		insightService: insightService,
	}
}

// Load implements EmployeeHandler
func (h *employeeHandlerImpl) Load(w http.ResponseWriter, r *http.Request) {
	state, err := h.rosterService.Load(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees loaded", state)
}

// LoadMore implements EmployeeHandler
func (h *employeeHandlerImpl) LoadMore(w http.ResponseWriter, r *http.Request) {
	state, err := h.rosterService.LoadMore(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// ShowMore implements EmployeeHandler
func (h *employeeHandlerImpl) ShowMore(w http.ResponseWriter, r *http.Request) {
	state, err := h.rosterService.ShowMore(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// List implements EmployeeHandler
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.rosterService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:          result.Page,
		Limit:         result.Limit,
		Shown:         result.Shown,
		TotalFiltered: result.TotalFiltered,
		HasMore:       result.HasMore,
	})
}

// Filtered implements EmployeeHandler
func (h *employeeHandlerImpl) Filtered(w http.ResponseWriter, r *http.Request) {
	result, err := h.rosterService.Filtered(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// State implements EmployeeHandler
func (h *employeeHandlerImpl) State(w http.ResponseWriter, r *http.Request) {
	result, err := h.rosterService.State(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateQuery implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateQuery decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	state, err := h.rosterService.UpdateQuery(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// ClearQuery implements EmployeeHandler
func (h *employeeHandlerImpl) ClearQuery(w http.ResponseWriter, r *http.Request) {
	state, err := h.rosterService.ClearQuery(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Filters cleared", state)
}

// SetPage implements EmployeeHandler
func (h *employeeHandlerImpl) SetPage(w http.ResponseWriter, r *http.Request) {
	var req employee.SetPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetPage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	state, err := h.rosterService.SetPage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// ResetPagination implements EmployeeHandler
func (h *employeeHandlerImpl) ResetPagination(w http.ResponseWriter, r *http.Request) {
	state, err := h.rosterService.ResetPagination(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParsePositiveInt(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Employee ID must be a positive integer", nil)
		return
	}

	result, err := h.insightService.GetEmployeeDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments implements EmployeeHandler
func (h *employeeHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	response.Success(w, fixtures.Departments)
}
