package utils

import (
	"errors"
	"time"
)

var ErrFutureDate = errors.New("start date is after the reference date")

// Tenure is a calendar distance between two dates.
type Tenure struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// TotalMonths returns the tenure in whole months, ignoring the day remainder.
func (t Tenure) TotalMonths() int {
	return t.Years*12 + t.Months
}

// CalculateTenure returns the calendar difference between from and to.
// Only the date part of both values is considered. When the day of to is
// smaller than the day of from, a month is borrowed using the length of the
// month preceding to's month (and the one before that if a short February
// still leaves the day count negative); a negative month count then borrows
// a year.
func CalculateTenure(from, to time.Time) (Tenure, error) {
	from = DateOnly(from)
	to = DateOnly(to)
	if from.After(to) {
		return Tenure{}, ErrFutureDate
	}

	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())
	days := to.Day() - from.Day()

	for prev := to.Month() - 1; days < 0; prev-- {
		months--
		days += DaysInMonth(to.Year(), prev)
	}
	if months < 0 {
		years--
		months += 12
	}

	return Tenure{Years: years, Months: months, Days: days}, nil
}

// DaysInMonth returns the number of days of month in year. Month values
// outside 1..12 are normalised the same way time.Date does.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
