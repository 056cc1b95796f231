package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
)

type ComputeRequest struct {
	Month       int      `json:"month"`
	Year        int      `json:"year"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidPayrollYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordFilter struct {
	Month      *int
	Year       *int
	EmployeeID *string
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Year != nil && !validator.IsValidPayrollYear(*f.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ApprovedAt string `json:"approved_at"`
	Result
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		Status:     string(r.Status),
		ApprovedAt: r.ApprovedAt.Format(time.RFC3339),
		Result:     r.Result,
	}
}

type ApprovalResponse struct {
	Approved []RecordResponse `json:"approved"`
	Failures []Failure        `json:"failures"`
}

func NewApprovalResponse(report ApprovalReport) ApprovalResponse {
	resp := ApprovalResponse{
		Approved: make([]RecordResponse, 0, len(report.Approved)),
		Failures: report.Failures,
	}
	if resp.Failures == nil {
		resp.Failures = []Failure{}
	}
	for _, r := range report.Approved {
		resp.Approved = append(resp.Approved, NewRecordResponse(r))
	}
	return resp
}

type SummaryResponse struct {
	Month    int       `json:"month"`
	Year     int       `json:"year"`
	Totals   Totals    `json:"totals"`
	Failures []Failure `json:"failures"`
}
