package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveEntitlementRepositoryImpl struct {
	db *database.DB
}

func NewLeaveEntitlementRepository(db *database.DB) leave.EntitlementRepository {
	return &leaveEntitlementRepositoryImpl{db: db}
}

const leaveEntitlementColumns = `employee_id, year, annual_leave_entitlement, leave_per_month, created_at, updated_at`

func scanLeaveEntitlement(row pgx.Row) (leave.Entitlement, error) {
	var (
		e             leave.Entitlement
		leavePerMonth []byte
	)
	if err := row.Scan(&e.EmployeeID, &e.Year, &e.AnnualLeaveEntitlement, &leavePerMonth, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return leave.Entitlement{}, err
	}
	if leavePerMonth != nil {
		var m leave.MonthlyValues
		if err := m.Scan(leavePerMonth); err != nil {
			return leave.Entitlement{}, err
		}
		e.LeavePerMonth = &m
	}
	return e, nil
}

// GetByEmployeeYear implements leave.EntitlementRepository.
func (r *leaveEntitlementRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveEntitlementColumns + ` FROM leave_entitlements WHERE employee_id::text = $1 AND year = $2`

	e, err := scanLeaveEntitlement(q.QueryRow(ctx, query, employeeID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Entitlement{}, leave.ErrEntitlementNotFound
		}
		return leave.Entitlement{}, fmt.Errorf("failed to get leave entitlement: %w", err)
	}
	return e, nil
}

// Upsert implements leave.EntitlementRepository.
func (r *leaveEntitlementRepositoryImpl) Upsert(ctx context.Context, e leave.Entitlement) (leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	var leavePerMonth interface{}
	if e.LeavePerMonth != nil {
		v, err := e.LeavePerMonth.Value()
		if err != nil {
			return leave.Entitlement{}, err
		}
		leavePerMonth = v
	}

	query := `
		INSERT INTO leave_entitlements (employee_id, year, annual_leave_entitlement, leave_per_month)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, year) DO UPDATE SET
			annual_leave_entitlement = EXCLUDED.annual_leave_entitlement,
			leave_per_month = EXCLUDED.leave_per_month,
			updated_at = NOW()
		RETURNING ` + leaveEntitlementColumns

	saved, err := scanLeaveEntitlement(q.QueryRow(ctx, query, e.EmployeeID, e.Year, e.AnnualLeaveEntitlement, leavePerMonth))
	if err != nil {
		return leave.Entitlement{}, fmt.Errorf("failed to upsert leave entitlement: %w", err)
	}
	return saved, nil
}
