package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	GetAccrual(w http.ResponseWriter, r *http.Request)
	GetAccrualTotals(w http.ResponseWriter, r *http.Request)
	UpsertEntitlement(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// GetAccrual implements LeaveHandler.
func (l *LeaveHandlerImpl) GetAccrual(w http.ResponseWriter, r *http.Request) {
	year, err := intURLParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.GetAccrual(r.Context(), chi.URLParam(r, "employeeId"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAccrualTotals implements LeaveHandler.
func (l *LeaveHandlerImpl) GetAccrualTotals(w http.ResponseWriter, r *http.Request) {
	year, err := intURLParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.GetAccrualTotals(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result.Records)})
}

// UpsertEntitlement implements LeaveHandler.
func (l *LeaveHandlerImpl) UpsertEntitlement(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertEntitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertEntitlement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	year, err := intURLParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeId")
	req.Year = year

	result, err := l.leaveService.UpsertEntitlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave entitlement saved", result)
}
