package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// Input carries everything one payroll computation needs, already loaded.
// A nil SalaryLaw means the year has no configuration.
type Input struct {
	Employee   employee.Employee
	Month      int
	Year       int
	SalaryLaw  *salarylaw.SalaryLaw
	Attendance attendance.MonthSummary
	Deficits   []deficit.Deficit
	AsOf       time.Time
}

type Earnings struct {
	BaseSalary        decimal.Decimal `json:"base_salary"`
	HousingAllowance  decimal.Decimal `json:"housing_allowance"`
	WorkerVoucher     decimal.Decimal `json:"worker_voucher"`
	ChildAllowance    decimal.Decimal `json:"child_allowance"`
	SeniorityPay      decimal.Decimal `json:"seniority_pay"`
	MarriageAllowance decimal.Decimal `json:"marriage_allowance"`
	OvertimePay       decimal.Decimal `json:"overtime_pay"`
}

func (e Earnings) Total() decimal.Decimal {
	return e.BaseSalary.
		Add(e.HousingAllowance).
		Add(e.WorkerVoucher).
		Add(e.ChildAllowance).
		Add(e.SeniorityPay).
		Add(e.MarriageAllowance).
		Add(e.OvertimePay)
}

func (e Earnings) add(o Earnings) Earnings {
	return Earnings{
		BaseSalary:        e.BaseSalary.Add(o.BaseSalary),
		HousingAllowance:  e.HousingAllowance.Add(o.HousingAllowance),
		WorkerVoucher:     e.WorkerVoucher.Add(o.WorkerVoucher),
		ChildAllowance:    e.ChildAllowance.Add(o.ChildAllowance),
		SeniorityPay:      e.SeniorityPay.Add(o.SeniorityPay),
		MarriageAllowance: e.MarriageAllowance.Add(o.MarriageAllowance),
		OvertimePay:       e.OvertimePay.Add(o.OvertimePay),
	}
}

type Deductions struct {
	Tax       decimal.Decimal `json:"tax"`
	Insurance decimal.Decimal `json:"insurance"`
	Deficits  decimal.Decimal `json:"deficits"`
}

func (d Deductions) Total() decimal.Decimal {
	return d.Tax.Add(d.Insurance).Add(d.Deficits)
}

func (d Deductions) add(o Deductions) Deductions {
	return Deductions{
		Tax:       d.Tax.Add(o.Tax),
		Insurance: d.Insurance.Add(o.Insurance),
		Deficits:  d.Deficits.Add(o.Deficits),
	}
}

// Result is the payslip of one employee for one month. NetPay always equals
// Earnings.Total() minus Deductions.Total().
type Result struct {
	EmployeeID      string                    `json:"employee_id"`
	EmployeeName    string                    `json:"employee_name"`
	Month           int                       `json:"month"`
	Year            int                       `json:"year"`
	WorkHours       decimal.Decimal           `json:"work_hours"`
	WorkingDays     int                       `json:"working_days"`
	OvertimeHours   decimal.Decimal           `json:"overtime_hours"`
	StatusCounts    map[attendance.Status]int `json:"status_counts"`
	Tenure          utils.Tenure              `json:"tenure"`
	DailyBaseSalary decimal.Decimal           `json:"daily_base_salary"`
	Earnings        Earnings                  `json:"earnings"`
	Deductions      Deductions                `json:"deductions"`
	TotalEarnings   decimal.Decimal           `json:"total_earnings"`
	TotalDeductions decimal.Decimal           `json:"total_deductions"`
	NetPay          decimal.Decimal           `json:"net_pay"`
}

type FailureCode string

const (
	FailureConfigurationMissing FailureCode = "configuration_missing"
	FailureInvalidDate          FailureCode = "invalid_date"
	FailureEmployeeNotFound     FailureCode = "employee_not_found"
	FailurePersistence          FailureCode = "persistence_failed"
	FailureComputation          FailureCode = "computation_failed"
)

// Failure reports why one employee could not be computed or approved
type Failure struct {
	EmployeeID string      `json:"employee_id"`
	Code       FailureCode `json:"code"`
	Reason     string      `json:"reason"`
}

type BatchResult struct {
	Results  []Result  `json:"results"`
	Failures []Failure `json:"failures"`
}

type RecordStatus string

const RecordStatusApproved RecordStatus = "approved"

// Record is an approved Result persisted for one employee and period
type Record struct {
	ID string
	Result
	Status     RecordStatus
	ApprovedAt time.Time
	CreatedAt  time.Time
}

type ApprovalReport struct {
	Approved []Record  `json:"-"`
	Failures []Failure `json:"failures"`
}

// Totals is the columnwise sum of a set of results
type Totals struct {
	Employees       int             `json:"employees"`
	WorkHours       decimal.Decimal `json:"work_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	Earnings        Earnings        `json:"earnings"`
	Deductions      Deductions      `json:"deductions"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

// SumResults adds up results without intermediate rounding
func SumResults(results []Result) Totals {
	var t Totals
	for _, r := range results {
		t.Employees++
		t.WorkHours = t.WorkHours.Add(r.WorkHours)
		t.OvertimeHours = t.OvertimeHours.Add(r.OvertimeHours)
		t.Earnings = t.Earnings.add(r.Earnings)
		t.Deductions = t.Deductions.add(r.Deductions)
		t.TotalEarnings = t.TotalEarnings.Add(r.TotalEarnings)
		t.TotalDeductions = t.TotalDeductions.Add(r.TotalDeductions)
		t.NetPay = t.NetPay.Add(r.NetPay)
	}
	return t
}
