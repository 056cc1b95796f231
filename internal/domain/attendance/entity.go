package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusLeave      Status = "leave"
	StatusHoliday    Status = "holiday"
	StatusPermission Status = "permission"
	StatusMedical    Status = "medical"
)

var statuses = []Status{StatusPresent, StatusAbsent, StatusLeave, StatusHoliday, StatusPermission, StatusMedical}

// Statuses returns every known attendance status in display order
func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

func (s Status) IsValid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Day is one employee's attendance on one calendar day. EntryTime and ExitTime
// only carry meaning while Status is present.
type Day struct {
	EmployeeID    string
	Year          int
	Month         int
	Day           int
	Status        Status
	EntryTime     *string // "HH:MM"
	ExitTime      *string // "HH:MM"
	LunchDuration *string // "H:MM", nil means the configured default
	Description   string
	UpdatedAt     time.Time
}

// DayHours is the computed contribution of a single day
type DayHours struct {
	WorkHours     decimal.Decimal
	OvertimeHours decimal.Decimal
}

// MonthSummary aggregates the attendance of one employee for one month.
// StatusCounts keeps every status separate so that absent, leave, holiday,
// permission and medical days remain distinguishable.
type MonthSummary struct {
	WorkingDays   int
	WorkHours     decimal.Decimal
	OvertimeHours decimal.Decimal
	StatusCounts  map[Status]int
}
