package deficit

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDeficitRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Day         int             `json:"day"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
}

func (r *CreateDeficitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of purchase_reimbursement_deduction, penalty, advance, loan"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if !validator.IsValidPayrollYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	} else if r.Day < 1 || r.Day > utils.DaysInMonth(r.Year, time.Month(r.Month)) {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "is outside the month"})
	}
	if len(r.Description) > 500 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateDeficitRequest) ToEntity() Deficit {
	return Deficit{
		EmployeeID:  r.EmployeeID,
		Type:        Type(r.Type),
		Amount:      r.Amount,
		Day:         r.Day,
		Month:       r.Month,
		Year:        r.Year,
		Description: strings.TrimSpace(r.Description),
	}
}

type DeficitFilter struct {
	EmployeeID string
	Month      int
	Year       int
}

func (f *DeficitFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidPayrollYear(f.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeficitResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Type        Type            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Day         int             `json:"day"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

func NewDeficitResponse(d Deficit) DeficitResponse {
	return DeficitResponse{
		ID:          d.ID,
		EmployeeID:  d.EmployeeID,
		Type:        d.Type,
		Amount:      d.Amount,
		Day:         d.Day,
		Month:       d.Month,
		Year:        d.Year,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}

// Total sums the amounts of the deficits matching employee and period
func Total(deficits []Deficit, employeeID string, month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deficits {
		if d.Matches(employeeID, month, year) {
			total = total.Add(d.Amount)
		}
	}
	return total
}
