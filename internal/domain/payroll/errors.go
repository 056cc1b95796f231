package payroll

import (
	"errors"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
)

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
)

// FailureCodeOf classifies a per-employee error. The second return value is
// false for errors that are not recoverable at the employee level.
func FailureCodeOf(err error) (FailureCode, bool) {
	switch {
	case errors.Is(err, salarylaw.ErrSalaryLawNotFound):
		return FailureConfigurationMissing, true
	case errors.Is(err, employee.ErrHireDateInFuture):
		return FailureInvalidDate, true
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return FailureEmployeeNotFound, true
	}
	return "", false
}

func NewFailure(employeeID string, code FailureCode, err error) Failure {
	return Failure{EmployeeID: employeeID, Code: code, Reason: err.Error()}
}
