package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// DefaultLunchDuration applies to days whose lunch duration is missing or malformed
const DefaultLunchDuration = "1:00"

// Aggregator reduces attendance days into worked and overtime hours.
// It holds no state between calls.
type Aggregator struct {
	standardHoursPerDay decimal.Decimal
	defaultLunch        decimal.Decimal
}

func NewAggregator(standardHoursPerDay decimal.Decimal, defaultLunch string) (*Aggregator, error) {
	if standardHoursPerDay.IsNegative() {
		return nil, fmt.Errorf("standard hours per day must not be negative, got %s", standardHoursPerDay)
	}
	lunch, err := utils.ParseClockTime(defaultLunch)
	if err != nil {
		return nil, fmt.Errorf("default lunch duration: %w", err)
	}
	return &Aggregator{standardHoursPerDay: standardHoursPerDay, defaultLunch: lunch}, nil
}

// Day computes the hours of a single day. Only present days with both clock
// times contribute; stray times on other statuses are ignored.
func (a *Aggregator) Day(d attendance.Day) attendance.DayHours {
	if d.Status != attendance.StatusPresent || d.EntryTime == nil || d.ExitTime == nil {
		return attendance.DayHours{}
	}

	entry, err := utils.ParseClockTime(*d.EntryTime)
	if err != nil {
		return attendance.DayHours{}
	}
	exit, err := utils.ParseClockTime(*d.ExitTime)
	if err != nil {
		return attendance.DayHours{}
	}

	lunch := a.defaultLunch
	if d.LunchDuration != nil {
		if l, err := utils.ParseClockTime(*d.LunchDuration); err == nil {
			lunch = l
		}
	}

	// exit before entry is clamped to zero rather than rejected
	work := decimal.Max(decimal.Zero, exit.Sub(entry).Sub(lunch))
	overtime := decimal.Max(decimal.Zero, work.Sub(a.standardHoursPerDay))

	return attendance.DayHours{WorkHours: work, OvertimeHours: overtime}
}

// Month sums the provided days. Days that were never recorded are simply
// not in the slice and contribute nothing.
func (a *Aggregator) Month(days []attendance.Day) attendance.MonthSummary {
	summary := attendance.MonthSummary{
		WorkHours:     decimal.Zero,
		OvertimeHours: decimal.Zero,
		StatusCounts:  make(map[attendance.Status]int, len(attendance.Statuses())),
	}
	for _, s := range attendance.Statuses() {
		summary.StatusCounts[s] = 0
	}

	for _, d := range days {
		summary.StatusCounts[d.Status]++
		if d.Status == attendance.StatusPresent {
			summary.WorkingDays++
		}
		h := a.Day(d)
		summary.WorkHours = summary.WorkHours.Add(h.WorkHours)
		summary.OvertimeHours = summary.OvertimeHours.Add(h.OvertimeHours)
	}

	return summary
}
