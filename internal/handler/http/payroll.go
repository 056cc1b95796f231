package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Computation
	Compute(w http.ResponseWriter, r *http.Request)
	ComputeBatch(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)

	// Approval and records
	Approve(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== COMPUTATION ==========

func (h *payrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	month, err := requiredIntQueryParam(r, "month")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, err := requiredIntQueryParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Compute(r.Context(), chi.URLParam(r, "employeeId"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ComputeBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ComputeBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result.Results), Failures: len(result.Failures)})
}

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	month, err := requiredIntQueryParam(r, "month")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, err := requiredIntQueryParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== RECORDS ==========

// Approve recomputes the period and persists every successful result
func (h *payrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	report, err := h.payrollService.ApprovePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := payroll.NewApprovalResponse(report)
	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result.Approved), Failures: len(result.Failures)})
}

func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	var (
		filter payroll.RecordFilter
		err    error
	)
	if filter.Month, err = intQueryParam(r, "month"); err != nil {
		response.HandleError(w, err)
		return
	}
	if filter.Year, err = intQueryParam(r, "year"); err != nil {
		response.HandleError(w, err)
		return
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	result, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result)})
}

func (h *payrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	body, err := h.payrollService.RenderPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("payslip-%s.pdf", id), body)
}
