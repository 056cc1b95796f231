package leave

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// Engine builds accrual records. It is pure apart from the injected policy.
type Engine struct {
	policy leave.AccrualPolicy
}

func NewEngine(policy leave.AccrualPolicy) *Engine {
	if policy == nil {
		policy = FixedRatePolicy{}
	}
	return &Engine{policy: policy}
}

// Compute derives the monthly entitlement (the stored override wins over the
// policy) and subtracts usage. Remaining values are never clamped.
func (e *Engine) Compute(entitlement leave.Entitlement, used leave.MonthlyValues) (leave.AccrualRecord, error) {
	var perMonth leave.MonthlyValues
	if entitlement.LeavePerMonth != nil {
		perMonth = *entitlement.LeavePerMonth
	} else {
		var err error
		perMonth, err = e.policy.MonthlyAccrual(entitlement.AnnualLeaveEntitlement)
		if err != nil {
			return leave.AccrualRecord{}, err
		}
	}

	rec := leave.AccrualRecord{
		EmployeeID:             entitlement.EmployeeID,
		Year:                   entitlement.Year,
		AnnualLeaveEntitlement: entitlement.AnnualLeaveEntitlement,
		LeavePerMonth:          perMonth,
		UsedLeavePerMonth:      used,
	}
	for i := range rec.RemainingLeavePerMonth {
		rec.RemainingLeavePerMonth[i] = perMonth[i].Sub(used[i])
	}
	rec.TotalUsedLeave = used.Sum()
	rec.TotalRemainingLeave = rec.RemainingLeavePerMonth.Sum()

	return rec, nil
}

// UsedLeave counts the leave days per month
func UsedLeave(days []attendance.Day) leave.MonthlyValues {
	var used leave.MonthlyValues
	one := decimal.NewFromInt(1)
	for _, d := range days {
		if d.Status != attendance.StatusLeave || d.Month < 1 || d.Month > leave.MonthsPerYear {
			continue
		}
		used[d.Month-1] = used[d.Month-1].Add(one)
	}
	return used
}

// SumRecords adds records column by column
func SumRecords(year int, records []leave.AccrualRecord) leave.AccrualRecord {
	total := leave.AccrualRecord{Year: year}
	for _, r := range records {
		total.AnnualLeaveEntitlement = total.AnnualLeaveEntitlement.Add(r.AnnualLeaveEntitlement)
		for i := 0; i < leave.MonthsPerYear; i++ {
			total.LeavePerMonth[i] = total.LeavePerMonth[i].Add(r.LeavePerMonth[i])
			total.UsedLeavePerMonth[i] = total.UsedLeavePerMonth[i].Add(r.UsedLeavePerMonth[i])
			total.RemainingLeavePerMonth[i] = total.RemainingLeavePerMonth[i].Add(r.RemainingLeavePerMonth[i])
		}
		total.TotalUsedLeave = total.TotalUsedLeave.Add(r.TotalUsedLeave)
		total.TotalRemainingLeave = total.TotalRemainingLeave.Add(r.TotalRemainingLeave)
	}
	return total
}
