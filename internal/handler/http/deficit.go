package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DeficitHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type deficitHandlerImpl struct {
	deficitService deficit.DeficitService
}

func NewDeficitHandler(deficitService deficit.DeficitService) DeficitHandler {
	return &deficitHandlerImpl{deficitService: deficitService}
}

func (h *deficitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := deficit.DeficitFilter{EmployeeID: r.URL.Query().Get("employee_id")}

	var err error
	if filter.Month, err = requiredIntQueryParam(r, "month"); err != nil {
		response.HandleError(w, err)
		return
	}
	if filter.Year, err = requiredIntQueryParam(r, "year"); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.deficitService.ListByEmployeePeriod(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result)})
}

func (h *deficitHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deficit.CreateDeficitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.deficitService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deficit recorded", result)
}

func (h *deficitHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Deficit ID is required", nil)
		return
	}

	if err := h.deficitService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deficit deleted", nil)
}
