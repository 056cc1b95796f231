package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMalformedClockTime = errors.New("malformed clock time")

var minutesPerHour = decimal.NewFromInt(60)

// ParseClockTime converts "H:MM" or "HH:MM" into decimal hours (hours + minutes/60).
// It is used both for wall-clock times and for durations such as a lunch break.
// Minutes that are not a multiple of 3 do not divide exactly; they are kept at
// decimal.DivisionPrecision (16 places) and rounding is left to the money
// amounts computed from them.
func ParseClockTime(s string) (decimal.Decimal, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedClockTime, s)
	}

	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	if hours > 24 || minutes > 59 || (hours == 24 && minutes > 0) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedClockTime, s)
	}

	return decimal.NewFromInt(int64(hours)).Add(decimal.NewFromInt(int64(minutes)).Div(minutesPerHour)), nil
}

// ClockHours is ParseClockTime with malformed input mapped to zero.
func ClockHours(s string) decimal.Decimal {
	h, err := ParseClockTime(s)
	if err != nil {
		return decimal.Zero
	}
	return h
}

// IsValidClockTime reports whether s is accepted by ParseClockTime.
func IsValidClockTime(s string) bool {
	_, err := ParseClockTime(s)
	return err == nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
