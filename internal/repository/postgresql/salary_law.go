package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryLawRepositoryImpl struct {
	db *database.DB
}

func NewSalaryLawRepository(db *database.DB) salarylaw.SalaryLawRepository {
	return &salaryLawRepositoryImpl{db: db}
}

const salaryLawColumns = `id, year, work_hours_per_day, base_salary, housing_allowance, worker_voucher,
	child_allowance_1, child_allowance_2, seniority_pay, overtime_rate, holiday_rate,
	tax_rate, insurance_rate, marriage_allowance, is_active, created_at, updated_at`

func scanSalaryLaw(row pgx.Row) (salarylaw.SalaryLaw, error) {
	var l salarylaw.SalaryLaw
	err := row.Scan(
		&l.ID, &l.Year, &l.WorkHoursPerDay, &l.BaseSalary, &l.HousingAllowance, &l.WorkerVoucher,
		&l.ChildAllowance1, &l.ChildAllowance2, &l.SeniorityPay, &l.OvertimeRate, &l.HolidayRate,
		&l.TaxRate, &l.InsuranceRate, &l.MarriageAllowance, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetByYear implements salarylaw.SalaryLawRepository.
func (r *salaryLawRepositoryImpl) GetByYear(ctx context.Context, year int) (salarylaw.SalaryLaw, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryLawColumns + ` FROM salary_laws WHERE year = $1 AND is_active`

	law, err := scanSalaryLaw(q.QueryRow(ctx, query, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salarylaw.SalaryLaw{}, salarylaw.ErrSalaryLawNotFound
		}
		return salarylaw.SalaryLaw{}, fmt.Errorf("failed to get salary law for %d: %w", year, err)
	}
	return law, nil
}

// List implements salarylaw.SalaryLawRepository.
func (r *salaryLawRepositoryImpl) List(ctx context.Context) ([]salarylaw.SalaryLaw, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryLawColumns + ` FROM salary_laws WHERE is_active ORDER BY year DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var laws []salarylaw.SalaryLaw
	for rows.Next() {
		l, err := scanSalaryLaw(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary law: %w", err)
		}
		laws = append(laws, l)
	}
	return laws, rows.Err()
}

// Upsert implements salarylaw.SalaryLawRepository.
// The previous active row of the year is deactivated in the same transaction.
func (r *salaryLawRepositoryImpl) Upsert(ctx context.Context, law salarylaw.SalaryLaw) (salarylaw.SalaryLaw, error) {
	var saved salarylaw.SalaryLaw

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx,
			`UPDATE salary_laws SET is_active = FALSE, updated_at = NOW() WHERE year = $1 AND is_active`,
			law.Year,
		); err != nil {
			return fmt.Errorf("failed to deactivate salary law for %d: %w", law.Year, err)
		}

		query := `
			INSERT INTO salary_laws (
				year, work_hours_per_day, base_salary, housing_allowance, worker_voucher,
				child_allowance_1, child_allowance_2, seniority_pay, overtime_rate, holiday_rate,
				tax_rate, insurance_rate, marriage_allowance, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, TRUE)
			RETURNING ` + salaryLawColumns

		var err error
		saved, err = scanSalaryLaw(q.QueryRow(ctx, query,
			law.Year, law.WorkHoursPerDay, law.BaseSalary, law.HousingAllowance, law.WorkerVoucher,
			law.ChildAllowance1, law.ChildAllowance2, law.SeniorityPay, law.OvertimeRate, law.HolidayRate,
			law.TaxRate, law.InsuranceRate, law.MarriageAllowance,
		))
		if err != nil {
			return fmt.Errorf("failed to insert salary law for %d: %w", law.Year, err)
		}
		return nil
	})
	if err != nil {
		return salarylaw.SalaryLaw{}, err
	}
	return saved, nil
}
