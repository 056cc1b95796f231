package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `employee_id, year, month, day, status, entry_time, exit_time, lunch_duration, description, updated_at`

func scanAttendanceDay(row pgx.Row) (attendance.Day, error) {
	var d attendance.Day
	err := row.Scan(
		&d.EmployeeID, &d.Year, &d.Month, &d.Day, &d.Status,
		&d.EntryTime, &d.ExitTime, &d.LunchDuration, &d.Description, &d.UpdatedAt,
	)
	return d, err
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		d, err := scanAttendanceDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Day, error) {
	return r.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_days
		WHERE employee_id::text = $1 AND year = $2 AND month = $3
		ORDER BY day
	`, employeeID, year, month)
}

// ListByEmployeeYear implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]attendance.Day, error) {
	return r.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_days
		WHERE employee_id::text = $1 AND year = $2
		ORDER BY month, day
	`, employeeID, year)
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (employee_id, year, month, day, status, entry_time, exit_time, lunch_duration, description, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (employee_id, year, month, day) DO UPDATE SET
			status = EXCLUDED.status,
			entry_time = EXCLUDED.entry_time,
			exit_time = EXCLUDED.exit_time,
			lunch_duration = EXCLUDED.lunch_duration,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendanceDay(q.QueryRow(ctx, query,
		day.EmployeeID, day.Year, day.Month, day.Day, day.Status,
		day.EntryTime, day.ExitTime, day.LunchDuration, day.Description,
	))
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to upsert attendance for %s %d-%02d-%02d: %w", day.EmployeeID, day.Year, day.Month, day.Day, err)
	}
	return saved, nil
}
