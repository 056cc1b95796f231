package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
)

type SalaryLawHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type salaryLawHandlerImpl struct {
	salaryLawService salarylaw.SalaryLawService
}

func NewSalaryLawHandler(salaryLawService salarylaw.SalaryLawService) SalaryLawHandler {
	return &salaryLawHandlerImpl{salaryLawService: salaryLawService}
}

func (h *salaryLawHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryLawService.ListSalaryLaws(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result)})
}

func (h *salaryLawHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	year, err := intURLParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryLawService.GetSalaryLaw(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryLawHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	year, err := intURLParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req salarylaw.UpsertSalaryLawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Year = year

	result, err := h.salaryLawService.UpsertSalaryLaw(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary law saved", result)
}
