package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deficitRepositoryImpl struct {
	db *database.DB
}

func NewDeficitRepository(db *database.DB) deficit.DeficitRepository {
	return &deficitRepositoryImpl{db: db}
}

const deficitColumns = `id, employee_id, type, amount, day, month, year, description, created_at`

func scanDeficit(row pgx.Row) (deficit.Deficit, error) {
	var d deficit.Deficit
	err := row.Scan(&d.ID, &d.EmployeeID, &d.Type, &d.Amount, &d.Day, &d.Month, &d.Year, &d.Description, &d.CreatedAt)
	return d, err
}

func (r *deficitRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]deficit.Deficit, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []deficit.Deficit
	for rows.Next() {
		d, err := scanDeficit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deficit: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// Create implements deficit.DeficitRepository.
func (r *deficitRepositoryImpl) Create(ctx context.Context, d deficit.Deficit) (deficit.Deficit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deficits (employee_id, type, amount, day, month, year, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + deficitColumns

	created, err := scanDeficit(q.QueryRow(ctx, query, d.EmployeeID, d.Type, d.Amount, d.Day, d.Month, d.Year, d.Description))
	if err != nil {
		return deficit.Deficit{}, fmt.Errorf("failed to insert deficit: %w", err)
	}
	return created, nil
}

// GetByID implements deficit.DeficitRepository.
func (r *deficitRepositoryImpl) GetByID(ctx context.Context, id string) (deficit.Deficit, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDeficit(q.QueryRow(ctx, `SELECT `+deficitColumns+` FROM deficits WHERE id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deficit.Deficit{}, deficit.ErrDeficitNotFound
		}
		return deficit.Deficit{}, fmt.Errorf("failed to get deficit: %w", err)
	}
	return d, nil
}

// ListByEmployeePeriod implements deficit.DeficitRepository.
func (r *deficitRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]deficit.Deficit, error) {
	return r.list(ctx, `
		SELECT `+deficitColumns+`
		FROM deficits
		WHERE employee_id::text = $1 AND month = $2 AND year = $3
		ORDER BY day, created_at
	`, employeeID, month, year)
}

// ListByPeriod implements deficit.DeficitRepository.
func (r *deficitRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]deficit.Deficit, error) {
	return r.list(ctx, `
		SELECT `+deficitColumns+`
		FROM deficits
		WHERE month = $1 AND year = $2
		ORDER BY employee_id, day, created_at
	`, month, year)
}

// Delete implements deficit.DeficitRepository.
func (r *deficitRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deficits WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deficit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deficit.ErrDeficitNotFound
	}
	return nil
}
