package leave

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertEntitlementRequest struct {
	EmployeeID             string            `json:"-"`
	Year                   int               `json:"-"`
	AnnualLeaveEntitlement decimal.Decimal   `json:"annual_leave_entitlement"`
	LeavePerMonth          []decimal.Decimal `json:"leave_per_month,omitempty"`
}

func (r *UpsertEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidPayrollYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if r.AnnualLeaveEntitlement.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "annual_leave_entitlement", Message: "must not be negative"})
	}
	if r.LeavePerMonth != nil {
		if len(r.LeavePerMonth) != MonthsPerYear {
			errs = append(errs, validator.ValidationError{Field: "leave_per_month", Message: "must contain 12 values"})
		}
		for _, v := range r.LeavePerMonth {
			if v.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "leave_per_month", Message: "values must not be negative"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpsertEntitlementRequest) ToEntity() Entitlement {
	e := Entitlement{
		EmployeeID:             r.EmployeeID,
		Year:                   r.Year,
		AnnualLeaveEntitlement: r.AnnualLeaveEntitlement,
	}
	if len(r.LeavePerMonth) == MonthsPerYear {
		var m MonthlyValues
		copy(m[:], r.LeavePerMonth)
		e.LeavePerMonth = &m
	}
	return e
}

type EntitlementResponse struct {
	EmployeeID             string          `json:"employee_id"`
	Year                   int             `json:"year"`
	AnnualLeaveEntitlement decimal.Decimal `json:"annual_leave_entitlement"`
	LeavePerMonth          *MonthlyValues  `json:"leave_per_month,omitempty"`
}

type AccrualResponse struct {
	EmployeeID             string          `json:"employee_id"`
	EmployeeName           string          `json:"employee_name,omitempty"`
	Year                   int             `json:"year"`
	AnnualLeaveEntitlement decimal.Decimal `json:"annual_leave_entitlement"`
	LeavePerMonth          MonthlyValues   `json:"leave_per_month"`
	UsedLeavePerMonth      MonthlyValues   `json:"used_leave_per_month"`
	RemainingLeavePerMonth MonthlyValues   `json:"remaining_leave_per_month"`
	TotalUsedLeave         decimal.Decimal `json:"total_used_leave"`
	TotalRemainingLeave    decimal.Decimal `json:"total_remaining_leave"`
}

type AccrualTotalsResponse struct {
	Year    int               `json:"year"`
	Records []AccrualResponse `json:"records"`
	Totals  AccrualResponse   `json:"totals"`
}

func NewAccrualResponse(r AccrualRecord, employeeName string) AccrualResponse {
	return AccrualResponse{
		EmployeeID:             r.EmployeeID,
		EmployeeName:           employeeName,
		Year:                   r.Year,
		AnnualLeaveEntitlement: r.AnnualLeaveEntitlement,
		LeavePerMonth:          r.LeavePerMonth,
		UsedLeavePerMonth:      r.UsedLeavePerMonth,
		RemainingLeavePerMonth: r.RemainingLeavePerMonth,
		TotalUsedLeave:         r.TotalUsedLeave,
		TotalRemainingLeave:    r.TotalRemainingLeave,
	}
}

func NewEntitlementResponse(e Entitlement) EntitlementResponse {
	return EntitlementResponse{
		EmployeeID:             e.EmployeeID,
		Year:                   e.Year,
		AnnualLeaveEntitlement: e.AnnualLeaveEntitlement,
		LeavePerMonth:          e.LeavePerMonth,
	}
}
