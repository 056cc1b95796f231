package attendance

import "context"

// AttendanceRepository stores one record per employee and calendar day
type AttendanceRepository interface {
	// ListByEmployeeMonth returns the stored days of the month ordered by day; unrecorded days are omitted
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Day, error)

	// ListByEmployeeYear returns every stored day of the year ordered by month and day
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Day, error)

	// Upsert creates the record on first edit and overwrites it afterwards
	Upsert(ctx context.Context, day Day) (Day, error)
}
