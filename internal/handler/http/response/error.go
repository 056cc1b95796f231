package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
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
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrHireDateInFuture):
		UnprocessableEntity(w, "INVALID_DATE", "Hire date is in the future")

	// Salary law domain errors
	case errors.Is(err, salarylaw.ErrSalaryLawNotFound):
		NotFound(w, "Salary law configuration not found for year")
	case errors.Is(err, salarylaw.ErrInvalidYear):
		BadRequest(w, "Invalid salary law year", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Invalid attendance period", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidFormula):
		UnprocessableEntity(w, "INVALID_FORMULA", "Leave accrual formula produced an invalid value")

	// Deficit domain errors
	case errors.Is(err, deficit.ErrDeficitNotFound):
		NotFound(w, "Deficit not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
