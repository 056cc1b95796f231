package salarylaw

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertSalaryLawRequest struct {
	Year              int              `json:"-"`
	WorkHoursPerDay   decimal.Decimal  `json:"work_hours_per_day"`
	BaseSalary        decimal.Decimal  `json:"base_salary"`
	HousingAllowance  decimal.Decimal  `json:"housing_allowance"`
	WorkerVoucher     decimal.Decimal  `json:"worker_voucher"`
	ChildAllowance1   decimal.Decimal  `json:"child_allowance_1"`
	ChildAllowance2   decimal.Decimal  `json:"child_allowance_2"`
	SeniorityPay      decimal.Decimal  `json:"seniority_pay"`
	OvertimeRate      decimal.Decimal  `json:"overtime_rate"`
	HolidayRate       decimal.Decimal  `json:"holiday_rate"`
	TaxRate           decimal.Decimal  `json:"tax_rate"`
	InsuranceRate     decimal.Decimal  `json:"insurance_rate"`
	MarriageAllowance *decimal.Decimal `json:"marriage_allowance,omitempty"`
}

func (r *UpsertSalaryLawRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !r.WorkHoursPerDay.IsPositive() || r.WorkHoursPerDay.GreaterThan(decimal.NewFromInt(24)) {
		errs = append(errs, validator.ValidationError{Field: "work_hours_per_day", Message: "must be greater than 0 and at most 24"})
	}

	amounts := map[string]decimal.Decimal{
		"base_salary":       r.BaseSalary,
		"housing_allowance": r.HousingAllowance,
		"worker_voucher":    r.WorkerVoucher,
		"child_allowance_1": r.ChildAllowance1,
		"child_allowance_2": r.ChildAllowance2,
		"seniority_pay":     r.SeniorityPay,
		"overtime_rate":     r.OvertimeRate,
		"holiday_rate":      r.HolidayRate,
	}
	if r.MarriageAllowance != nil {
		amounts["marriage_allowance"] = *r.MarriageAllowance
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if !validator.IsFraction(r.TaxRate) {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be a fraction between 0 and 1"})
	}
	if !validator.IsFraction(r.InsuranceRate) {
		errs = append(errs, validator.ValidationError{Field: "insurance_rate", Message: "must be a fraction between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds the active configuration described by the request
func (r *UpsertSalaryLawRequest) ToEntity() SalaryLaw {
	marriage := decimal.Zero
	if r.MarriageAllowance != nil {
		marriage = *r.MarriageAllowance
	}
	return SalaryLaw{
		Year:              r.Year,
		WorkHoursPerDay:   r.WorkHoursPerDay,
		BaseSalary:        r.BaseSalary,
		HousingAllowance:  r.HousingAllowance,
		WorkerVoucher:     r.WorkerVoucher,
		ChildAllowance1:   r.ChildAllowance1,
		ChildAllowance2:   r.ChildAllowance2,
		SeniorityPay:      r.SeniorityPay,
		OvertimeRate:      r.OvertimeRate,
		HolidayRate:       r.HolidayRate,
		TaxRate:           r.TaxRate,
		InsuranceRate:     r.InsuranceRate,
		MarriageAllowance: marriage,
		IsActive:          true,
	}
}

type SalaryLawResponse struct {
	ID                string          `json:"id"`
	Year              int             `json:"year"`
	WorkHoursPerDay   decimal.Decimal `json:"work_hours_per_day"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	HousingAllowance  decimal.Decimal `json:"housing_allowance"`
	WorkerVoucher     decimal.Decimal `json:"worker_voucher"`
	ChildAllowance1   decimal.Decimal `json:"child_allowance_1"`
	ChildAllowance2   decimal.Decimal `json:"child_allowance_2"`
	SeniorityPay      decimal.Decimal `json:"seniority_pay"`
	OvertimeRate      decimal.Decimal `json:"overtime_rate"`
	HolidayRate       decimal.Decimal `json:"holiday_rate"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	InsuranceRate     decimal.Decimal `json:"insurance_rate"`
	MarriageAllowance decimal.Decimal `json:"marriage_allowance"`
	IsActive          bool            `json:"is_active"`
}

func NewSalaryLawResponse(l SalaryLaw) SalaryLawResponse {
	return SalaryLawResponse{
		ID:                l.ID,
		Year:              l.Year,
		WorkHoursPerDay:   l.WorkHoursPerDay,
		BaseSalary:        l.BaseSalary,
		HousingAllowance:  l.HousingAllowance,
		WorkerVoucher:     l.WorkerVoucher,
		ChildAllowance1:   l.ChildAllowance1,
		ChildAllowance2:   l.ChildAllowance2,
		SeniorityPay:      l.SeniorityPay,
		OvertimeRate:      l.OvertimeRate,
		HolidayRate:       l.HolidayRate,
		TaxRate:           l.TaxRate,
		InsuranceRate:     l.InsuranceRate,
		MarriageAllowance: l.MarriageAllowance,
		IsActive:          l.IsActive,
	}
}
