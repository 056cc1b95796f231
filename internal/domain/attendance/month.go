package attendance

import "time"

func monthOf(m int) time.Month {
	return time.Month(m)
}

// DefaultDay is the record assumed for a day that has never been edited
func DefaultDay(employeeID string, year, month, day int) Day {
	return Day{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Day:        day,
		Status:     StatusAbsent,
	}
}

// FillMonth returns one record per calendar day. Stored records are kept
// as-is; missing days are materialised with DefaultDay. The second return
// value reports which days came from storage.
func FillMonth(employeeID string, year, month, daysInMonth int, stored []Day) ([]Day, []bool) {
	byDay := make(map[int]Day, len(stored))
	for _, d := range stored {
		byDay[d.Day] = d
	}

	days := make([]Day, 0, daysInMonth)
	recorded := make([]bool, 0, daysInMonth)
	for n := 1; n <= daysInMonth; n++ {
		if d, ok := byDay[n]; ok {
			days = append(days, d)
			recorded = append(recorded, true)
			continue
		}
		days = append(days, DefaultDay(employeeID, year, month, n))
		recorded = append(recorded, false)
	}
	return days, recorded
}
