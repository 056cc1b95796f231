package attendance

import "context"

type AttendanceService interface {
	// GetMonth returns every calendar day of the month, with unrecorded days defaulted to absent
	GetMonth(ctx context.Context, employeeID string, year, month int) (MonthResponse, error)

	// UpsertDay records one day of attendance
	UpsertDay(ctx context.Context, req UpsertDayRequest) (DayResponse, error)
}
