package attendance

import (
	"strings"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertDayRequest struct {
	EmployeeID    string  `json:"-"`
	Year          int     `json:"-"`
	Month         int     `json:"-"`
	Day           int     `json:"-"`
	Status        string  `json:"status"`
	EntryTime     *string `json:"entry_time,omitempty"`
	ExitTime      *string `json:"exit_time,omitempty"`
	LunchDuration *string `json:"lunch_duration,omitempty"`
	Description   string  `json:"description"`
}

func (r *UpsertDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidPayrollYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	} else if r.Day < 1 || r.Day > utils.DaysInMonth(r.Year, monthOf(r.Month)) {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "is outside the month"})
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, leave, holiday, permission, medical"})
	}

	clockFields := []struct {
		name  string
		value *string
	}{
		{"entry_time", r.EntryTime},
		{"exit_time", r.ExitTime},
		{"lunch_duration", r.LunchDuration},
	}
	for _, f := range clockFields {
		if f.value != nil && !validator.IsEmpty(*f.value) && !utils.IsValidClockTime(*f.value) {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must be in H:MM or HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity normalises blank clock strings to nil
func (r *UpsertDayRequest) ToEntity() Day {
	return Day{
		EmployeeID:    r.EmployeeID,
		Year:          r.Year,
		Month:         r.Month,
		Day:           r.Day,
		Status:        Status(r.Status),
		EntryTime:     blankToNil(r.EntryTime),
		ExitTime:      blankToNil(r.ExitTime),
		LunchDuration: blankToNil(r.LunchDuration),
		Description:   strings.TrimSpace(r.Description),
	}
}

type DayResponse struct {
	Day           int              `json:"day"`
	Status        Status           `json:"status"`
	EntryTime     *string          `json:"entry_time,omitempty"`
	ExitTime      *string          `json:"exit_time,omitempty"`
	LunchDuration *string          `json:"lunch_duration,omitempty"`
	Description   string           `json:"description,omitempty"`
	Recorded      bool             `json:"recorded"`
	WorkHours     *decimal.Decimal `json:"work_hours,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
}

type SummaryResponse struct {
	WorkingDays   int             `json:"working_days"`
	WorkHours     decimal.Decimal `json:"work_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	StatusCounts  map[Status]int  `json:"status_counts"`
}

type MonthResponse struct {
	EmployeeID          string          `json:"employee_id"`
	Year                int             `json:"year"`
	Month               int             `json:"month"`
	StandardHoursPerDay decimal.Decimal `json:"standard_hours_per_day"`
	Days                []DayResponse   `json:"days"`
	Summary             SummaryResponse `json:"summary"`
}

func NewDayResponse(d Day, recorded bool) DayResponse {
	return DayResponse{
		Day:           d.Day,
		Status:        d.Status,
		EntryTime:     d.EntryTime,
		ExitTime:      d.ExitTime,
		LunchDuration: d.LunchDuration,
		Description:   d.Description,
		Recorded:      recorded,
	}
}

func NewSummaryResponse(s MonthSummary) SummaryResponse {
	return SummaryResponse{
		WorkingDays:   s.WorkingDays,
		WorkHours:     s.WorkHours,
		OvertimeHours: s.OvertimeHours,
		StatusCounts:  s.StatusCounts,
	}
}

func blankToNil(s *string) *string {
	if s == nil || validator.IsEmpty(*s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
