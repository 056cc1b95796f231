package payroll

import (
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DefaultStandardDaysInMonth divides the monthly base salary into the displayed daily rate
const DefaultStandardDaysInMonth = 30

// Calculator turns loaded inputs into payslips. It performs no I/O and keeps
// no state between calls, so inputs can be computed in any order.
type Calculator struct {
	standardDaysInMonth decimal.Decimal
}

func NewCalculator(standardDaysInMonth int) *Calculator {
	if standardDaysInMonth <= 0 {
		standardDaysInMonth = DefaultStandardDaysInMonth
	}
	return &Calculator{standardDaysInMonth: decimal.NewFromInt(int64(standardDaysInMonth))}
}

// Calculate computes the payslip of one employee
func (c *Calculator) Calculate(in payroll.Input) (payroll.Result, error) {
	if !validator.IsValidMonth(in.Month) || !validator.IsValidPayrollYear(in.Year) {
		return payroll.Result{}, payroll.ErrInvalidPeriod
	}
	if in.SalaryLaw == nil || in.SalaryLaw.Year != in.Year {
		return payroll.Result{}, fmt.Errorf("year %d: %w", in.Year, salarylaw.ErrSalaryLawNotFound)
	}
	law := in.SalaryLaw
	emp := in.Employee

	tenure, err := emp.Tenure(in.AsOf)
	if err != nil {
		return payroll.Result{}, err
	}

	baseSalary := law.BaseSalary
	if emp.BaseSalary != nil {
		baseSalary = *emp.BaseSalary
	}
	overtimeRate := law.OvertimeRate
	if emp.HourlyWage != nil {
		overtimeRate = *emp.HourlyWage
	}

	earnings := payroll.Earnings{
		BaseSalary:        baseSalary,
		HousingAllowance:  law.HousingAllowance,
		WorkerVoucher:     law.WorkerVoucher,
		ChildAllowance:    childAllowance(law, emp.ChildrenCount),
		SeniorityPay:      law.SeniorityPay,
		MarriageAllowance: decimal.Zero,
		OvertimePay:       in.Attendance.OvertimeHours.Mul(overtimeRate),
	}
	if emp.IsMarried {
		earnings.MarriageAllowance = law.MarriageAllowance
	}
	totalEarnings := earnings.Total()

	// tax and insurance apply to gross earnings
	deductions := payroll.Deductions{
		Tax:       totalEarnings.Mul(law.TaxRate),
		Insurance: totalEarnings.Mul(law.InsuranceRate),
		Deficits:  deficit.Total(in.Deficits, emp.ID, in.Month, in.Year),
	}
	totalDeductions := deductions.Total()

	return payroll.Result{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		Month:           in.Month,
		Year:            in.Year,
		WorkHours:       in.Attendance.WorkHours,
		WorkingDays:     in.Attendance.WorkingDays,
		OvertimeHours:   in.Attendance.OvertimeHours,
		StatusCounts:    in.Attendance.StatusCounts,
		Tenure:          tenure,
		DailyBaseSalary: baseSalary.Div(c.standardDaysInMonth),
		Earnings:        earnings,
		Deductions:      deductions,
		TotalEarnings:   totalEarnings,
		TotalDeductions: totalDeductions,
		NetPay:          totalEarnings.Sub(totalDeductions),
	}, nil
}

// CalculateBatch computes each input independently. A failing input is
// reported and never affects the others; result order follows input order.
func (c *Calculator) CalculateBatch(inputs []payroll.Input) payroll.BatchResult {
	batch := payroll.BatchResult{
		Results:  make([]payroll.Result, 0, len(inputs)),
		Failures: []payroll.Failure{},
	}
	for _, in := range inputs {
		res, err := c.Calculate(in)
		if err != nil {
			code, ok := payroll.FailureCodeOf(err)
			if !ok {
				code = payroll.FailureComputation
			}
			batch.Failures = append(batch.Failures, payroll.NewFailure(in.Employee.ID, code, err))
			continue
		}
		batch.Results = append(batch.Results, res)
	}
	return batch
}

// childAllowance pays the first tier from one child and adds the second tier
// from two children; further children add nothing.
func childAllowance(law *salarylaw.SalaryLaw, children int) decimal.Decimal {
	total := decimal.Zero
	if children >= 1 {
		total = total.Add(law.ChildAllowance1)
	}
	if children >= 2 {
		total = total.Add(law.ChildAllowance2)
	}
	return total
}
