package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	UpsertDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetMonth returns every day of the month with its hours and the month summary
func (h *attendanceHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	year, err := intURLParam(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	month, err := intURLParam(r, "month")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) UpsertDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = chi.URLParam(r, "employeeId")
	var err error
	if req.Year, err = intURLParam(r, "year"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Month, err = intURLParam(r, "month"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Day, err = intURLParam(r, "day"); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.UpsertDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", result)
}
