package salarylaw

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryLaw is the yearly pay configuration. Exactly one active row exists per year.
type SalaryLaw struct {
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
	TaxRate           decimal.Decimal `json:"tax_rate"`       // fraction, 0.10 = 10%
	InsuranceRate     decimal.Decimal `json:"insurance_rate"` // fraction
	MarriageAllowance decimal.Decimal `json:"marriage_allowance"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
